package usecase

import (
	"context"
	"fmt"
	"math"

	"clinic-api/internal/data/entity"
	"clinic-api/internal/data/repository"
	"clinic-api/internal/dto/response"

	"go.uber.org/zap"
)

// StatsService aggregates the dashboard numbers over the same ownership
// scope the patient list uses: admins see everything, everyone else only
// their own cases.
type StatsService interface {
	Overview(ctx context.Context, actor *entity.User) (*response.StatsResponse, error)
}

type statsService struct {
	repo repository.PatientRepository
	log  *zap.Logger
}

func NewStatsService(repo repository.PatientRepository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) Overview(ctx context.Context, actor *entity.User) (*response.StatsResponse, error) {
	stats, err := s.repo.Stats(ctx, scopeFor(actor))
	if err != nil {
		s.log.Error("Failed to load stats",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return nil, fmt.Errorf("load stats: %w", err)
	}

	avg := 0.0
	if stats.Total > 0 {
		avg = stats.TotalCost / float64(stats.Total)
	}

	return &response.StatsResponse{
		TotalPatients:     stats.Total,
		PendingPatients:   stats.Pending,
		CompletedPatients: stats.Completed,
		TotalCosts:        math.Round(stats.TotalCost*100) / 100,
		AvgCostPerPatient: math.Round(avg*100) / 100,
	}, nil
}
