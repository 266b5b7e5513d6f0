package api

import (
	"net/http"
)

type userProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *Api) HandlerGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := a.UserServiceConfig.FetchUserFromClaims(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusOK, userProfileResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
}
