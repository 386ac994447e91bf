package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/pkg/pagination"
	"github.com/fittrack/fittrack/pkg/week"
	"gorm.io/gorm"
)

// RecordRepository is the durable store for the three record variants.
// Inserts are append-only; there is no update or delete path.
type RecordRepository interface {
	InsertSleep(ctx context.Context, rec *domain.SleepRecord) error
	InsertCalories(ctx context.Context, rec *domain.CalorieRecord) error
	InsertWorkout(ctx context.Context, rec *domain.WorkoutRecord) error
	// WeekData fetches all three metrics for the inclusive window
	// [today-(nDays-1), today]. Slice order is store-defined (date DESC);
	// callers must sort where order matters.
	WeekData(ctx context.Context, userID int64, today time.Time, nDays int) (*domain.WeekData, error)
	// List pages through one metric's full history, newest date first.
	List(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) ([]domain.RecordResponse, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// storageErr tags store failures so the transport layer can map them to a
// retryable "temporarily unavailable" response.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

func (r *recordRepository) InsertSleep(ctx context.Context, rec *domain.SleepRecord) error {
	return storageErr(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *recordRepository) InsertCalories(ctx context.Context, rec *domain.CalorieRecord) error {
	return storageErr(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *recordRepository) InsertWorkout(ctx context.Context, rec *domain.WorkoutRecord) error {
	return storageErr(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *recordRepository) WeekData(ctx context.Context, userID int64, today time.Time, nDays int) (*domain.WeekData, error) {
	start := today.AddDate(0, 0, -(nDays - 1)).Format(week.DateLayout)
	end := today.Format(week.DateLayout)

	data := &domain.WeekData{}

	if err := r.windowQuery(ctx, userID, start, end).Find(&data.Sleep).Error; err != nil {
		return nil, storageErr(err)
	}
	if err := r.windowQuery(ctx, userID, start, end).Find(&data.Calories).Error; err != nil {
		return nil, storageErr(err)
	}
	if err := r.windowQuery(ctx, userID, start, end).Find(&data.Workouts).Error; err != nil {
		return nil, storageErr(err)
	}

	return data, nil
}

func (r *recordRepository) windowQuery(ctx context.Context, userID int64, start, end string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC")
}

func (r *recordRepository) List(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) ([]domain.RecordResponse, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra row so the service can tell whether more pages exist.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	switch metric {
	case domain.MetricSleep:
		var recs []domain.SleepRecord
		if err := query.Find(&recs).Error; err != nil {
			return nil, storageErr(err)
		}
		out := make([]domain.RecordResponse, len(recs))
		for i := range recs {
			out[i] = recs[i].ToResponse()
		}
		return out, nil
	case domain.MetricCalories:
		var recs []domain.CalorieRecord
		if err := query.Find(&recs).Error; err != nil {
			return nil, storageErr(err)
		}
		out := make([]domain.RecordResponse, len(recs))
		for i := range recs {
			out[i] = recs[i].ToResponse()
		}
		return out, nil
	case domain.MetricWorkouts:
		var recs []domain.WorkoutRecord
		if err := query.Find(&recs).Error; err != nil {
			return nil, storageErr(err)
		}
		out := make([]domain.RecordResponse, len(recs))
		for i := range recs {
			out[i] = recs[i].ToResponse()
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMetric, metric)
	}
}
