package api

import (
	"github.com/tcp_snm/arena/internal/service/auth_service"
	"github.com/tcp_snm/arena/internal/service/contest_service"
	"github.com/tcp_snm/arena/internal/service/submission_service"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig       *auth_service.AuthService
	UserServiceConfig       *user_service.UserService
	ContestServiceConfig    *contest_service.ContestService
	SubmissionServiceConfig *submission_service.SubmissionService
}

// every response crosses the boundary in this envelope
type apiResponse struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}
