package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack/internal/api/validation"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// RecordSleep handles POST /v1/users/{userId}/sleep
// @Summary Record sleep
// @Description Log last night's sleep for today's date. Duration is free text: "8:15" or "7.5" (comma accepted), 0-24h exclusive.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Param request body domain.RecordSleepRequest true "Sleep duration"
// @Success 201 {object} domain.RecordResponse "Sleep record created"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON body"
// @Failure 422 {object} problem.Problem "Duration failed validation"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/sleep [post]
func (h *RecordHandler) RecordSleep(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.RecordSleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.RecordSleep(r.Context(), userID, req.Duration, time.Now())
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec.ToResponse())
}

// RecordCalories handles POST /v1/users/{userId}/calories
// @Summary Record calorie intake
// @Description Log a calorie amount for today's date. Same-day entries accumulate; the weekly report averages over all of them.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Param request body domain.RecordCaloriesRequest true "Calorie amount"
// @Success 201 {object} domain.RecordResponse "Calorie record created"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON body"
// @Failure 422 {object} problem.Problem "Amount failed validation"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/calories [post]
func (h *RecordHandler) RecordCalories(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.RecordCaloriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.RecordCalories(r.Context(), userID, req.Amount, time.Now())
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec.ToResponse())
}

// RecordWorkout handles POST /v1/users/{userId}/workouts
// @Summary Record a workout
// @Description Log a workout with duration and a free-text activity label for today's date. The label is normalized (trimmed, first letter capitalized).
// @Tags records
// @Accept json
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Param request body domain.RecordWorkoutRequest true "Workout data"
// @Success 201 {object} domain.RecordResponse "Workout record created"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON body"
// @Failure 422 {object} problem.Problem "Duration or activity failed validation"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/workouts [post]
func (h *RecordHandler) RecordWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.RecordWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.RecordWorkout(r.Context(), userID, req.Duration, req.Activity, time.Now())
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec.ToResponse())
}

// History handles GET /v1/users/{userId}/records/{metric}
// @Summary List record history
// @Description Fetch paginated record history for one metric (sleep, calories, workouts). Filter by inclusive ISO date range. Newest first.
// @Tags records
// @Produce json
// @Param userId path integer true "User ID" example(42)
// @Param metric path string true "Metric name" Enums(sleep, calories, workouts)
// @Param from query string false "Start of date range (inclusive, YYYY-MM-DD)" example(2025-03-01)
// @Param to query string false "End of date range (inclusive, YYYY-MM-DD)" example(2025-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.RecordListResponse "Records with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID or metric"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Storage unavailable"
// @Router /users/{userId}/records/{metric} [get]
func (h *RecordHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	metric, err := domain.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		problem.BadRequest("Unknown metric, expected one of: sleep, calories, workouts").Write(w)
		return
	}

	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.History(r.Context(), userID, metric, filter)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseRecordFilter(r *http.Request) (domain.RecordFilter, []problem.FieldError) {
	var filter domain.RecordFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid YYYY-MM-DD date",
			})
		} else {
			filter.From = fromStr
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid YYYY-MM-DD date",
			})
		} else {
			filter.To = toStr
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}

func writeRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDuration):
		problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
			{Field: "duration", Message: "must be H:MM or decimal hours between 0 and 24 (exclusive)"},
		}).Write(w)
	case errors.Is(err, domain.ErrInvalidAmount):
		problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
			{Field: "amount", Message: "must be a positive integer"},
		}).Write(w)
	case errors.Is(err, domain.ErrMissingActivity):
		problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
			{Field: "activity", Message: "is required"},
		}).Write(w)
	case errors.Is(err, domain.ErrInvalidMetric):
		problem.BadRequest("Unknown metric, expected one of: sleep, calories, workouts").Write(w)
	case errors.Is(err, domain.ErrStorage):
		problem.Unavailable("Storage is temporarily unavailable").Write(w)
	default:
		problem.InternalError("Failed to process record").Write(w)
	}
}

func parseUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
