package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/llm"
	"github.com/fittrack/fittrack/internal/motivation"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/pkg/problem"
)

type AdviceHandler struct {
	service service.AdviceService
}

func NewAdviceHandler(service service.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// AdviceResponse wraps the advisor's reply.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// MotivationResponse wraps a motivational message.
type MotivationResponse struct {
	Message string `json:"message"`
}

// Advise handles GET /v1/users/{userId}/advice
// @Summary Personalized weekly advice
// @Description Sends the weekly digest to the configured LLM and returns its free-text advice. Metrics without data are presented to the model as "no data" rather than omitted.
// @Tags advice
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Success 200 {object} handler.AdviceResponse "Advisor reply"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 503 {object} problem.Problem "Storage or advisor unavailable"
// @Router /users/{userId}/advice [get]
func (h *AdviceHandler) Advise(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	advice, err := h.service.Advise(r.Context(), userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorage):
			problem.Unavailable("Storage is temporarily unavailable").Write(w)
		case errors.Is(err, llm.ErrAdvisorUnavailable),
			errors.Is(err, llm.ErrAdvisorRequest),
			errors.Is(err, llm.ErrAdvisorResponse):
			problem.Unavailable("Advice is temporarily unavailable").Write(w)
		default:
			problem.InternalError("Failed to generate advice").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, AdviceResponse{Advice: advice})
}

// Motivation handles GET /v1/motivation
// @Summary Random motivational message
// @Description Returns one message from a fixed built-in list. No user data involved.
// @Tags advice
// @Produce json
// @Success 200 {object} handler.MotivationResponse "Motivational message"
// @Router /motivation [get]
func (h *AdviceHandler) Motivation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MotivationResponse{Message: motivation.Random()})
}
