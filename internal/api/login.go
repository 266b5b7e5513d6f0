package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service/auth_service"
	"github.com/tcp_snm/arena/middleware"
)

func (a *Api) HandlerLogin(w http.ResponseWriter, r *http.Request) {
	// extract user details for login
	var request auth_service.UserLoginRequest

	// decode from the json body
	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid login payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}

	// validate the user and gen a jwt token
	loginResponse, tokenExpiry, err := a.AuthServiceConfig.Login(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	// set jwt session cookie
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    loginResponse.Token,
		Expires:  tokenExpiry,
		Path:     "/",                  // Important: Makes the cookie available across the entire site
		HttpOnly: true,                 // Crucial: Prevents JavaScript access
		Secure:   true,                 // Crucial: Only send over HTTPS
		SameSite: http.SameSiteLaxMode, // Recommended: Protects against CSRF
	}
	http.SetCookie(w, cookie)

	respondWithJson(w, http.StatusOK, loginResponse)
}
