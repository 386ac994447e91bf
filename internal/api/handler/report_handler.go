package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/pkg/problem"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// WeeklyReportResponse wraps the formatted report text.
type WeeklyReportResponse struct {
	Report string `json:"report"`
}

// Report handles GET /v1/users/{userId}/report
// @Summary Weekly statistics report
// @Description Formatted text summary of the last 7 days (including today): sleep average, calorie average, and workout totals grouped by activity. A metric without records gets an explicit "no data" line.
// @Tags reports
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Success 200 {object} handler.WeeklyReportResponse "Formatted report text"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/report [get]
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	report, err := h.service.WeeklyReport(r.Context(), userID, time.Now())
	if err != nil {
		writeReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WeeklyReportResponse{Report: report})
}

// Digest handles GET /v1/users/{userId}/digest
// @Summary Weekly advisory digest
// @Description Raw per-entry digest of the last 7 days, the structured input behind the advice endpoint. Entries keep storage order; empty metrics are empty lists.
// @Tags reports
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Success 200 {object} domain.Digest "Per-metric entry lists"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/digest [get]
func (h *ReportHandler) Digest(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	digest, err := h.service.AdvisoryDigest(r.Context(), userID, time.Now())
	if err != nil {
		writeReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, digest)
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrStorage) {
		problem.Unavailable("Storage is temporarily unavailable").Write(w)
		return
	}
	problem.InternalError("Failed to build report").Write(w)
}
