package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/pkg/duration"
	"github.com/fittrack/fittrack/pkg/pagination"
	"github.com/fittrack/fittrack/pkg/week"
)

// RecordService validates user input and appends records. All validation
// happens here, at the boundary: aggregation code below assumes its inputs
// are already valid. The record date is stamped from the injected "today".
type RecordService interface {
	RecordSleep(ctx context.Context, userID int64, durationText string, today time.Time) (*domain.SleepRecord, error)
	RecordCalories(ctx context.Context, userID int64, amount int, today time.Time) (*domain.CalorieRecord, error)
	RecordWorkout(ctx context.Context, userID int64, durationText, activity string, today time.Time) (*domain.WorkoutRecord, error)
	History(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) (*domain.RecordListResponse, error)
}

type recordService struct {
	repo repository.RecordRepository
}

func NewRecordService(repo repository.RecordRepository) RecordService {
	return &recordService{repo: repo}
}

func (s *recordService) RecordSleep(ctx context.Context, userID int64, durationText string, today time.Time) (*domain.SleepRecord, error) {
	hours, ok := duration.Parse(durationText)
	if !ok || hours <= 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, durationText)
	}

	rec := &domain.SleepRecord{
		UserID: userID,
		Date:   today.Format(week.DateLayout),
		Hours:  hours,
	}
	if err := s.repo.InsertSleep(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) RecordCalories(ctx context.Context, userID int64, amount int, today time.Time) (*domain.CalorieRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	rec := &domain.CalorieRecord{
		UserID: userID,
		Date:   today.Format(week.DateLayout),
		Amount: amount,
	}
	if err := s.repo.InsertCalories(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) RecordWorkout(ctx context.Context, userID int64, durationText, activity string, today time.Time) (*domain.WorkoutRecord, error) {
	hours, ok := duration.Parse(durationText)
	if !ok || hours <= 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, durationText)
	}

	label := capitalize(strings.TrimSpace(activity))
	if label == "" {
		return nil, domain.ErrMissingActivity
	}

	rec := &domain.WorkoutRecord{
		UserID:        userID,
		Date:          today.Format(week.DateLayout),
		DurationHours: hours,
		ActivityType:  label,
	}
	if err := s.repo.InsertWorkout(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) History(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	records, err := s.repo.List(ctx, userID, metric, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.RecordListResponse{
		Data: records,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	if response.Data == nil {
		response.Data = []domain.RecordResponse{}
	}
	return response, nil
}

// capitalize normalizes an activity label the way "бег" becomes "Бег":
// first rune upper, rest lower, so the per-activity grouping in the report
// is case-insensitive for practical input.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
