package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack/internal/chart"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/pkg/problem"
)

type ChartHandler struct {
	service service.SeriesService
}

func NewChartHandler(service service.SeriesService) *ChartHandler {
	return &ChartHandler{service: service}
}

// Chart handles GET /v1/users/{userId}/chart
// @Summary Weekly activity chart
// @Description PNG chart of the last 7 days: sleep and calorie lines with gaps on missing days, workout hours as bars with zero-height bars on empty days. Returns 204 when no metric has any record in the window.
// @Tags reports
// @Produce png
// @Param userId path integer true "User ID" example(42)
// @Success 200 {file} binary "PNG image"
// @Success 204 "No data in the last 7 days"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 500 {object} problem.Problem "Rendering failed"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/chart [get]
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	series, err := h.service.WeeklySeries(r.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			problem.Unavailable("Storage is temporarily unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to prepare chart data").Write(w)
		return
	}

	if !series.HasData {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	png, err := chart.RenderWeekly(series, userID)
	if err != nil {
		problem.InternalError("Failed to render chart").Write(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
