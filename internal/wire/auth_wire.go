package wire

import (
	"net/http"

	"clinic-api/internal/adaptor"
	"clinic-api/internal/data/repository"
	"clinic-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	loginLimiter func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Login is the only public route, and the only throttled one
	r.With(loginLimiter).Post("/api/auth/login", authHandler.Login)

	// Logout and the current-user lookup stay reachable for users who
	// still have to change their password
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Group(func(r chi.Router) {
		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/user", authHandler.Me)
	})
}
