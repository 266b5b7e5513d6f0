package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service/contest_service"
)

func (a *Api) HandlerAddMcqQuestion(w http.ResponseWriter, r *http.Request) {
	contestID, ok := contestIdFromRequest(w, r)
	if !ok {
		return
	}

	var request contest_service.AddMcqQuestionRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid mcq question payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}
	request.ContestID = contestID

	question, err := a.ContestServiceConfig.AddMcqQuestion(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, map[string]any{
		"id":        question.ID,
		"contestId": question.ContestID,
	})
}

func (a *Api) HandlerAddDsaProblem(w http.ResponseWriter, r *http.Request) {
	contestID, ok := contestIdFromRequest(w, r)
	if !ok {
		return
	}

	var request contest_service.AddDsaProblemRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid dsa problem payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}
	request.ContestID = contestID

	problem, err := a.ContestServiceConfig.AddDsaProblem(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, map[string]any{
		"id":        problem.ID,
		"contestId": problem.ContestID,
	})
}

func questionIdFromRequest(w http.ResponseWriter, r *http.Request, param string) (int32, bool) {
	// ParseInt with a 32 bit size rejects ids that would wrap the column type
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 32)
	if err != nil {
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return 0, false
	}
	return int32(id), true
}
