package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/tcp_snm/arena/middleware"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", middleware.JWTMiddleware(apiConfig.HandlerReadiness))

	// auth layer
	v1.Post("/auth/signup", apiConfig.HandlerSignUp)
	v1.Post("/auth/login", apiConfig.HandlerLogin)

	// users layer
	v1.Get("/me", middleware.JWTMiddleware(apiConfig.HandlerGetMe))

	// contests layer
	// create and view
	v1.Post("/contests", middleware.JWTMiddleware(apiConfig.HandlerCreateContest))
	v1.Get("/contests/{contestId}", middleware.JWTMiddleware(apiConfig.HandlerGetContest))

	// questions layer
	v1.Post("/contests/{contestId}/mcq", middleware.JWTMiddleware(apiConfig.HandlerAddMcqQuestion))
	v1.Post("/contests/{contestId}/dsa", middleware.JWTMiddleware(apiConfig.HandlerAddDsaProblem))

	// submissions layer
	v1.Post(
		"/contests/{contestId}/mcq/{questionId}/submit",
		middleware.JWTMiddleware(apiConfig.HandlerSubmitMcq),
	)
	v1.Post(
		"/contests/{contestId}/dsa/{problemId}/submit",
		middleware.JWTMiddleware(apiConfig.HandlerSubmitDsa),
	)

	return v1
}
