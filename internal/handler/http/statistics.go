package http

import (
	"net/http"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
	"github.com/staffhub-io/staffdir-backend-go/internal/handler/http/response"
)

type StatisticsHandler interface {
	GetClientStatistics(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandlerImpl{
		statisticsService: statisticsService,
	}
}

// GetClientStatistics implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetClientStatistics(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDParam(r)
	if err != nil {
		response.BadRequest(w, "Client ID must be a positive integer", nil)
		return
	}

	summary, err := h.statisticsService.GetClientStatistics(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
