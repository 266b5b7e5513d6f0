package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service/submission_service"
)

func (a *Api) HandlerSubmitMcq(w http.ResponseWriter, r *http.Request) {
	contestID, ok := contestIdFromRequest(w, r)
	if !ok {
		return
	}
	questionID, ok := questionIdFromRequest(w, r, "questionId")
	if !ok {
		return
	}

	var request submission_service.McqSubmissionRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid mcq submission payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}
	request.ContestID = contestID
	request.QuestionID = questionID

	result, err := a.SubmissionServiceConfig.SubmitMcq(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, result)
}

func (a *Api) HandlerSubmitDsa(w http.ResponseWriter, r *http.Request) {
	contestID, ok := contestIdFromRequest(w, r)
	if !ok {
		return
	}
	problemID, ok := questionIdFromRequest(w, r, "problemId")
	if !ok {
		return
	}

	var request submission_service.DsaSubmissionRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		log.Warnf("invalid dsa submission payload, %v", err)
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
		return
	}
	request.ContestID = contestID
	request.ProblemID = problemID

	result, err := a.SubmissionServiceConfig.SubmitDsa(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusCreated, result)
}
