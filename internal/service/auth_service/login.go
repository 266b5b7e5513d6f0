package auth_service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/service"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 24 * time.Hour

func (a *AuthService) Login(
	ctx context.Context,
	request UserLoginRequest,
) (response UserLoginResponse, tokenExpiry time.Time, err error) {
	// validate
	if err = service.ValidateInput(request); err != nil {
		return
	}

	// fetch the user by email
	user, err := a.UserConfig.FetchUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = arena_errors.ErrInvalidUserCredentials
			return
		}
		log.Errorf("failed to get user by email, %v", err)
		err = errors.Join(arena_errors.ErrInternal, err)
		return
	}

	// compare the password against the stored hash
	if err = bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(request.Password),
	); err != nil {
		log.Warnf("failed login attempt for user %s", user.ID)
		err = arena_errors.ErrInvalidUserCredentials
		return
	}

	// generate a signed token carrying the user id and role
	tokenExpiry = time.Now().Add(tokenValidity)
	token, err := generateJWTToken(
		service.UserCredentialClaims{
			UserID: user.ID,
			Role:   string(user.Role),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(tokenExpiry),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		},
	)
	if err != nil {
		return
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("logged in")

	response = UserLoginResponse{Token: token}
	return
}

func generateJWTToken(claims service.UserCredentialClaims) (string, error) {
	secret := os.Getenv(service.KeyJWTSecret)
	if secret == "" {
		err := fmt.Errorf(
			"%w, %s not found in environment",
			arena_errors.ErrInternal,
			service.KeyJWTSecret,
		)
		log.Error(err)
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Errorf("unable to sign jwt token, %v", err)
		return "", errors.Join(arena_errors.ErrInternal, err)
	}
	return signed, nil
}
