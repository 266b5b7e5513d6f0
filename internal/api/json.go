package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
)

const (
	codeInvalidRequest     = "INVALID_REQUEST"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthorized       = "UNAUTHORIZED"
	codeForbidden          = "FORBIDDEN"
	codeContestNotFound    = "CONTEST_NOT_FOUND"
	codeQuestionNotFound   = "QUESTION_NOT_FOUND"
	codeNotFound           = "NOT_FOUND"
	codeContestNotActive   = "CONTEST_NOT_ACTIVE"
	codeAlreadySubmitted   = "ALREADY_SUBMITTED"
	codeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	codeJudgeUnavailable   = "JUDGE_UNAVAILABLE"
	codeInternalError      = "INTERNAL_ERROR"
)

func decodeJsonBody(body io.ReadCloser, v any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func respondWithJson(w http.ResponseWriter, statusCode int, data any) {
	response, err := json.Marshal(apiResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
	if err != nil {
		log.Errorf("unable to marshal %v, %v", data, err)
		respondWithCode(w, http.StatusInternalServerError, codeInternalError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func respondWithCode(w http.ResponseWriter, statusCode int, errorCode string) {
	response, err := json.Marshal(apiResponse{
		Success: false,
		Data:    nil,
		Error:   &errorCode,
	})
	if err != nil {
		// marshalling a flat struct of builtins cannot fail, but the
		// boundary never goes silent either way
		log.Errorf("unable to marshal error envelope, %v", err)
		http.Error(w, errorCode, statusCode)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// handlerError is the single place where service errors are translated to
// the boundary taxonomy. Nothing below this mapping leaks to the caller.
func handlerError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, arena_errors.ErrAlreadySubmitted):
		respondWithCode(w, http.StatusBadRequest, codeAlreadySubmitted)
	case errors.Is(err, arena_errors.ErrContestNotActive):
		respondWithCode(w, http.StatusBadRequest, codeContestNotActive)
	case errors.Is(err, arena_errors.ErrUserAlreadyExists):
		respondWithCode(w, http.StatusBadRequest, codeEmailAlreadyExists)
	case errors.Is(err, arena_errors.ErrInvalidRequest):
		respondWithCode(w, http.StatusBadRequest, codeInvalidRequest)
	case errors.Is(err, arena_errors.ErrInvalidUserCredentials):
		respondWithCode(w, http.StatusUnauthorized, codeInvalidCredentials)
	case errors.Is(err, arena_errors.ErrInvalidRequestCredentials):
		respondWithCode(w, http.StatusUnauthorized, codeUnauthorized)
	case errors.Is(err, arena_errors.ErrUnAuthorized):
		respondWithCode(w, http.StatusForbidden, codeForbidden)
	case errors.Is(err, arena_errors.ErrContestNotFound):
		respondWithCode(w, http.StatusNotFound, codeContestNotFound)
	case errors.Is(err, arena_errors.ErrQuestionNotFound):
		respondWithCode(w, http.StatusNotFound, codeQuestionNotFound)
	case errors.Is(err, arena_errors.ErrNotFound):
		respondWithCode(w, http.StatusNotFound, codeNotFound)
	case errors.Is(err, arena_errors.ErrJudgeUnavailable):
		respondWithCode(w, http.StatusServiceUnavailable, codeJudgeUnavailable)
	default:
		respondWithCode(w, http.StatusInternalServerError, codeInternalError)
	}
}
