package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/pkg/duration"
	"github.com/fittrack/fittrack/pkg/week"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReportService folds a user's weekly records into the text report and the
// advisory digest.
type ReportService interface {
	// WeeklyReport renders the three-section weekly summary text.
	WeeklyReport(ctx context.Context, userID int64, today time.Time) (string, error)
	// AdvisoryDigest reshapes the same window into the compact tuple lists
	// consumed by the advice prompt.
	AdvisoryDigest(ctx context.Context, userID int64, today time.Time) (*domain.Digest, error)
}

type reportService struct {
	repo repository.RecordRepository
}

func NewReportService(repo repository.RecordRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) WeeklyReport(ctx context.Context, userID int64, today time.Time) (string, error) {
	data, err := s.fetchWeek(ctx, userID, today, "ReportService.WeeklyReport")
	if err != nil {
		return "", err
	}
	return BuildWeeklyReport(data), nil
}

func (s *reportService) AdvisoryDigest(ctx context.Context, userID int64, today time.Time) (*domain.Digest, error) {
	data, err := s.fetchWeek(ctx, userID, today, "ReportService.AdvisoryDigest")
	if err != nil {
		return nil, err
	}
	return BuildAdvisoryDigest(data), nil
}

func (s *reportService) fetchWeek(ctx context.Context, userID int64, today time.Time, spanName string) (*domain.WeekData, error) {
	tracer := otel.Tracer("fittrack-api/report")
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithAttributes(
			attribute.Int64("user.id", userID),
			attribute.String("window.end", today.Format(week.DateLayout)),
			attribute.Int("window.days", week.Days),
		),
	)
	defer span.End()

	return s.repo.WeekData(ctx, userID, today, week.Days)
}

// BuildWeeklyReport is a pure fold from raw weekly records to the report
// text. It assumes validated inputs and sorts explicitly wherever display
// order matters; repeated calls on the same input produce identical output.
func BuildWeeklyReport(data *domain.WeekData) string {
	report := []string{"📊 Статистика за последние 7 дней:\n"}

	report = append(report, sleepSection(data.Sleep)...)
	report = append(report, "\n")
	report = append(report, caloriesSection(data.Calories)...)
	report = append(report, "\n")
	report = append(report, workoutsSection(data.Workouts)...)

	return strings.Join(report, "\n")
}

func sleepSection(records []domain.SleepRecord) []string {
	if len(records) == 0 {
		return []string{"😴 Сон: Нет данных за последние 7 дней."}
	}

	// The mean is over all records, not per day: multiple entries on one
	// date each count. The chart series resolves same-day collisions
	// differently (see domain.WeeklySeries).
	total := 0.0
	for _, rec := range records {
		total += rec.Hours
	}
	avg := total / float64(len(records))

	lines := []string{
		"😴 Сон:",
		fmt.Sprintf("  - В среднем: %s / ночь", duration.Format(avg)),
		"  - Записи:",
	}

	sorted := make([]domain.SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	for _, rec := range sorted {
		lines = append(lines, fmt.Sprintf("    - %s: %s", rec.Date, duration.Format(rec.Hours)))
	}
	return lines
}

func caloriesSection(records []domain.CalorieRecord) []string {
	if len(records) == 0 {
		return []string{"🍎 Калории: Нет данных за последние 7 дней."}
	}

	total := 0
	for _, rec := range records {
		total += rec.Amount
	}
	avg := float64(total) / float64(len(records))

	lines := []string{
		"🍎 Калории:",
		fmt.Sprintf("  - В среднем: %.0f ккал / день", avg),
		"  - Записи:",
	}

	sorted := make([]domain.CalorieRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	for _, rec := range sorted {
		lines = append(lines, fmt.Sprintf("    - %s: %d ккал", rec.Date, rec.Amount))
	}
	return lines
}

func workoutsSection(records []domain.WorkoutRecord) []string {
	if len(records) == 0 {
		return []string{"💪 Тренировки: Нет данных за последние 7 дней."}
	}

	total := 0.0
	sums := make(map[string]float64)
	for _, rec := range records {
		total += rec.DurationHours
		sums[rec.ActivityType] += rec.DurationHours
	}

	type group struct {
		activity string
		hours    float64
	}
	groups := make([]group, 0, len(sums))
	for activity, hours := range sums {
		groups = append(groups, group{activity, hours})
	}
	// Longest first; equal sums fall back to the label so repeated calls
	// always print the same order.
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].hours != groups[j].hours {
			return groups[i].hours > groups[j].hours
		}
		return groups[i].activity < groups[j].activity
	})

	lines := []string{
		"💪 Тренировки:",
		fmt.Sprintf("  - Всего часов: %s", duration.Format(total)),
		"  - По активностям:",
	}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("    - %s: %s", g.activity, duration.Format(g.hours)))
	}
	return lines
}

// BuildAdvisoryDigest reshapes raw records into tuple lists, preserving the
// store's return order. Deliberately lighter than the report: the advisor
// reads raw chronology, not statistics.
func BuildAdvisoryDigest(data *domain.WeekData) *domain.Digest {
	digest := &domain.Digest{
		Sleep:    make([]domain.SleepEntry, 0, len(data.Sleep)),
		Calories: make([]domain.CalorieEntry, 0, len(data.Calories)),
		Workouts: make([]domain.WorkoutEntry, 0, len(data.Workouts)),
	}

	for _, rec := range data.Sleep {
		digest.Sleep = append(digest.Sleep, domain.SleepEntry{Date: rec.Date, Hours: rec.Hours})
	}
	for _, rec := range data.Calories {
		digest.Calories = append(digest.Calories, domain.CalorieEntry{Date: rec.Date, Amount: rec.Amount})
	}
	for _, rec := range data.Workouts {
		digest.Workouts = append(digest.Workouts, domain.WorkoutEntry{
			Date:          rec.Date,
			ActivityType:  rec.ActivityType,
			DurationHours: rec.DurationHours,
		})
	}

	return digest
}
