package wire

import (
	"clinic-api/internal/adaptor"
	"clinic-api/internal/data/repository"
	"clinic-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePatient(
	r chi.Router,
	patientHandler *adaptor.PatientHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.ForcePasswordChange(log),
	).Route("/api/patients", func(r chi.Router) {
		r.Get("/", patientHandler.List)
		r.Post("/", patientHandler.Create)
		r.Get("/{id}", patientHandler.GetByID)
		r.Put("/{id}", patientHandler.Update)
		r.Patch("/{id}/complete", patientHandler.MarkComplete)
		r.Delete("/{id}", patientHandler.Delete)
	})
}
