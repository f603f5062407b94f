package wire

import (
	"clinic-api/internal/adaptor"
	"clinic-api/internal/data/repository"
	"clinic-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes. Authorization beyond the
// session check lives in the policy layer, not in route middleware.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// Change-password bypasses ForcePasswordChange so a flagged user can
	// actually clear the flag
	r.With(auth).Post("/api/users/change-password", userHandler.ChangePassword)

	r.With(auth, middleware.ForcePasswordChange(log)).Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.GetByID)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})
}
