package wire

import (
	"clinic-api/internal/adaptor"
	"clinic-api/internal/data/repository"
	"clinic-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.ForcePasswordChange(log),
	).Get("/api/stats", statsHandler.Overview)
}
