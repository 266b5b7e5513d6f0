package user_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
)

// ParseUserRole converts a free-form role string into the closed role set.
// An empty role defaults to contestee, matching account creation defaults.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case RoleCreator:
		return RoleCreator, nil
	case RoleContestee, UserRole(""):
		return RoleContestee, nil
	default:
		return "", fmt.Errorf(
			"%w, role must be one of %s or %s",
			arena_errors.ErrInvalidRequest,
			RoleCreator,
			RoleContestee,
		)
	}
}

// AuthorizeRole is the single role gate for every operation. The role is
// fixed at signup and carried in the credential claims, so no db round trip
// is needed here.
func AuthorizeRole(
	claims service.UserCredentialClaims,
	required UserRole,
	warnMessage string,
) error {
	if claims.Role == "" {
		log.Errorf("user %s presented credentials without a role", claims.UserID)
		return arena_errors.ErrInvalidRequestCredentials
	}
	role, err := ParseUserRole(claims.Role)
	if err != nil {
		// a credential carrying an unknown role is a corrupted token,
		// not a client mistake
		log.Errorf(
			"user %s presented credentials with unknown role %q",
			claims.UserID,
			claims.Role,
		)
		return arena_errors.ErrInvalidRequestCredentials
	}
	if role == required {
		return nil
	}
	if warnMessage != "" {
		log.Warn(warnMessage)
	}
	return arena_errors.ErrUnAuthorized
}

func (u *UserService) FetchUserById(
	ctx context.Context,
	id uuid.UUID,
) (database.User, error) {
	user, err := u.DB.GetUserById(ctx, id)
	if err != nil {
		return database.User{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch user with id %v", id),
		)
	}
	return user, nil
}

func (u *UserService) FetchUserByEmail(
	ctx context.Context,
	email string,
) (database.User, error) {
	user, err := u.DB.GetUserByEmail(ctx, email)
	if err != nil {
		return database.User{}, err
	}
	return user, nil
}

func (u *UserService) FetchUserFromClaims(ctx context.Context) (user database.User, err error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return
	}
	user, err = u.FetchUserById(ctx, claims.UserID)
	return
}
