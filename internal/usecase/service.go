package usecase

import (
	"clinic-api/internal/data/repository"
	"clinic-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Patient PatientService
	Stats   StatsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Patient: NewPatientService(repo.Patient, log),
		Stats:   NewStatsService(repo.Patient, log),
	}
}
