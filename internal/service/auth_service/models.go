package auth_service

import (
	"context"

	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

var (
	msgUniqueKey = map[string]error{
		"uq_users_email": arena_errors.ErrUserAlreadyExists,
	}

	errMsgs = map[string]map[string]error{
		arena_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

type AuthService struct {
	DB         AuthStore
	UserConfig *user_service.UserService
}

// AuthStore is the slice of the query layer auth needs write access to.
type AuthStore interface {
	InsertUser(ctx context.Context, arg database.InsertUserParams) (database.User, error)
}

type UserSignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=74"`
	Role     string `json:"role"`
}

type UserSignUpResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=74"`
}

type UserLoginResponse struct {
	Token string `json:"token"`
}
