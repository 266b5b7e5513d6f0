package auth_service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/internal/service/user_service"
	"golang.org/x/crypto/bcrypt"
)

func (a *AuthService) SignUp(
	ctx context.Context,
	request UserSignUpRequest,
) (userResponse UserSignUpResponse, err error) {
	// Validate
	if err = service.ValidateInput(request); err != nil {
		return
	}

	// role is fixed at account creation and never changes afterwards
	role, err := user_service.ParseUserRole(request.Role)
	if err != nil {
		return
	}

	// Hash the password.
	passwordHash, err := generatePasswordHash(request.Password)
	if err != nil {
		return
	}

	// Create the user in the database and handle DB-specific errors.
	dbUser, err := a.DB.InsertUser(ctx, database.InsertUserParams{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         database.UserRole(role),
	})
	if err != nil {
		err = arena_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot create user with email %s in db", request.Email),
		)
		return
	}

	// Log and return
	log.WithFields(log.Fields{
		"user_id": dbUser.ID,
		"role":    dbUser.Role,
	}).Info("created user")

	userResponse = UserSignUpResponse{
		ID:    dbUser.ID.String(),
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  string(dbUser.Role),
	}

	return
}

func generatePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("unable to generate password hash, %v", err)
		return "", errors.Join(arena_errors.ErrInternal, err)
	}
	return string(hash), nil
}
