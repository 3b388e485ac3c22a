package handler

import (
	"net/http"

	"github.com/orna-jewels/pipeline-api/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Dashboard summary
// @Description Pipeline distribution, urgency and risk breakdowns, and today's focus list
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummaryDTO
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard summary", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build dashboard summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
