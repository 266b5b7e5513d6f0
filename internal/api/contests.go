package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service/contest_service"
)

func (a *Api) HandlerCreateContest(w http.ResponseWriter, r *http.Request) {
	var request contest_service.CreateContestRequest

	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid contest payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}

	contest, err := a.ContestServiceConfig.CreateContest(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, contest)
}

func (a *Api) HandlerGetContest(w http.ResponseWriter, r *http.Request) {
	contestID, ok := contestIdFromRequest(w, r)
	if !ok {
		return
	}

	contest, err := a.ContestServiceConfig.GetContestWithQuestions(r.Context(), contestID)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusOK, contest)
}

func contestIdFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	contestID, err := uuid.Parse(chi.URLParam(r, "contestId"))
	if err != nil {
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return uuid.UUID{}, false
	}
	return contestID, true
}
