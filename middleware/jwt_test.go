package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/middleware"
)

func signedToken(t *testing.T, secret string, expiresAt time.Time) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.UserCredentialClaims{
		UserID: userID,
		Role:   "contestee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("cannot sign token: %v", err)
	}
	return signed, userID
}

func claimsCapturingHandler(t *testing.T, called *bool, wantUserID uuid.UUID) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		claims, err := service.GetClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("expected claims on the request context, got %v", err)
			return
		}
		if claims.UserID != wantUserID {
			t.Errorf("expected user %s in claims, got %s", wantUserID, claims.UserID)
		}
	}
}

func TestJWTMiddlewareBearerHeader(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, "test-secret")
	token, userID := signedToken(t, "test-secret", time.Now().Add(time.Hour))

	var called bool
	handler := middleware.JWTMiddleware(claimsCapturingHandler(t, &called, userID))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	handler(httptest.NewRecorder(), request)

	if !called {
		t.Error("expected the wrapped handler to run")
	}
}

func TestJWTMiddlewareSessionCookie(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, "test-secret")
	token, userID := signedToken(t, "test-secret", time.Now().Add(time.Hour))

	var called bool
	handler := middleware.JWTMiddleware(claimsCapturingHandler(t, &called, userID))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{
		Name:  middleware.KeyJwtSessionCookieName,
		Value: token,
	})
	handler(httptest.NewRecorder(), request)

	if !called {
		t.Error("expected the wrapped handler to run")
	}
}

func TestJWTMiddlewareRejections(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, "test-secret")

	expired, _ := signedToken(t, "test-secret", time.Now().Add(-time.Hour))
	foreign, _ := signedToken(t, "other-secret", time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not.a.jwt"},
		{name: "expired token", token: expired},
		{name: "wrong signing key", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
				t.Error("expected the wrapped handler to be skipped")
			})

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}
			recorder := httptest.NewRecorder()
			handler(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", recorder.Code)
			}
		})
	}
}
