package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service/auth_service"
)

func (a *Api) HandlerSignUp(w http.ResponseWriter, r *http.Request) {
	var request auth_service.UserSignUpRequest

	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid signup payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}

	userResponse, err := a.AuthServiceConfig.SignUp(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, userResponse)
}
