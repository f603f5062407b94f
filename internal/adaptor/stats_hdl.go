package adaptor

import (
	"net/http"

	"clinic-api/internal/usecase"
	"clinic-api/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// Overview handles GET /api/stats
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stats, err := h.service.Overview(r.Context(), actor)
	if err != nil {
		respondServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseData(w, "stats", stats, "Statistics retrieved successfully")
}
