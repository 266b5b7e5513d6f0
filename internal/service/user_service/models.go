package user_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tcp_snm/arena/internal/database"
)

type UserService struct {
	DB UserStore
}

// UserStore is the subset of the query layer the user service reads from.
// Declared here so tests can swap in an in-memory fake.
type UserStore interface {
	GetUserById(ctx context.Context, id uuid.UUID) (database.User, error)
	GetUserByEmail(ctx context.Context, email string) (database.User, error)
}

type UserRole string

const (
	RoleCreator   UserRole = "creator"
	RoleContestee UserRole = "contestee"
)
