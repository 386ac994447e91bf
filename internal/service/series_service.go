package service

import (
	"context"
	"math"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/pkg/week"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SeriesService prepares the chart-ready weekly series.
type SeriesService interface {
	WeeklySeries(ctx context.Context, userID int64, today time.Time) (*domain.WeeklySeries, error)
}

type seriesService struct {
	repo repository.RecordRepository
}

func NewSeriesService(repo repository.RecordRepository) SeriesService {
	return &seriesService{repo: repo}
}

func (s *seriesService) WeeklySeries(ctx context.Context, userID int64, today time.Time) (*domain.WeeklySeries, error) {
	tracer := otel.Tracer("fittrack-api/series")
	ctx, span := tracer.Start(ctx, "SeriesService.WeeklySeries",
		trace.WithAttributes(
			attribute.Int64("user.id", userID),
			attribute.String("window.end", today.Format(week.DateLayout)),
		),
	)
	defer span.End()

	data, err := s.repo.WeekData(ctx, userID, today, week.Days)
	if err != nil {
		return nil, err
	}

	series := BuildWeeklySeries(data, today)
	span.SetAttributes(attribute.Bool("series.has_data", series.HasData))
	return series, nil
}

// BuildWeeklySeries aligns raw records to the 7-day window. Pure function of
// its inputs; empty input is a valid state, never an error. See
// domain.WeeklySeries for the collision and gap policy.
func BuildWeeklySeries(data *domain.WeekData, today time.Time) *domain.WeeklySeries {
	dates := week.Dates(today)

	series := &domain.WeeklySeries{
		Dates:    dates,
		Sleep:    make([]float64, len(dates)),
		Calories: make([]float64, len(dates)),
		Workouts: make([]float64, len(dates)),
		HasData:  !data.IsEmpty(),
	}

	sleepByDate := week.Index(data.Sleep,
		func(r domain.SleepRecord) string { return r.Date },
		func(r domain.SleepRecord) float64 { return r.Hours },
	)
	caloriesByDate := week.Index(data.Calories,
		func(r domain.CalorieRecord) string { return r.Date },
		func(r domain.CalorieRecord) float64 { return float64(r.Amount) },
	)

	workoutsByDate := make(map[string]float64, len(dates))
	for _, d := range dates {
		workoutsByDate[d] = 0.0
	}
	for _, rec := range data.Workouts {
		if _, inWindow := workoutsByDate[rec.Date]; inWindow {
			workoutsByDate[rec.Date] += rec.DurationHours
		}
	}

	for i, d := range dates {
		series.Sleep[i] = valueOrMissing(sleepByDate, d)
		series.Calories[i] = valueOrMissing(caloriesByDate, d)
		series.Workouts[i] = workoutsByDate[d]
	}

	return series
}

// valueOrMissing keeps "no entry" distinct from a recorded zero: absent days
// become NaN so the chart shows a gap rather than a zero point.
func valueOrMissing(byDate map[string]float64, date string) float64 {
	if v, ok := byDate[date]; ok {
		return v
	}
	return math.NaN()
}
