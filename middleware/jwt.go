package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/service"
)

// JWTMiddleware resolves the bearer credential into user claims and stores
// them on the request context. Handlers behind it can assume a principal.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			respondUnauthorized(w)
			return
		}

		var claims service.UserCredentialClaims
		token, err := jwt.ParseWithClaims(
			tokenString,
			&claims,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				secret := os.Getenv(service.KeyJWTSecret)
				if secret == "" {
					return nil, fmt.Errorf("%s not found in environment", service.KeyJWTSecret)
				}
				return []byte(secret), nil
			},
		)
		if err != nil || !token.Valid {
			log.Warnf("rejected request with invalid credentials, %v", err)
			respondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func extractToken(r *http.Request) string {
	// prefer the authorization header, fall back to the session cookie
	authorization := r.Header.Get("Authorization")
	if authorization != "" {
		return strings.TrimPrefix(authorization, "Bearer ")
	}
	cookie, err := r.Cookie(KeyJwtSessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success": false, "data": null, "error": "UNAUTHORIZED"}`))
}
