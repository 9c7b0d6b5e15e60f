package http

import (
	"net/http"

	"github.com/kennarhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/kennarhq/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDailyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDailyStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
