package http

import (
	"net/http"

	"github.com/kennarhq/attendance-backend-go/internal/domain/summary"
	"github.com/kennarhq/attendance-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{
		summaryService: summaryService,
	}
}

// GetMonthlySummary implements SummaryHandler.
func (h *summaryHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.summaryService.GetMonthlySummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
