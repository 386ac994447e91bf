package handler

import (
	"context"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/google/uuid"
)

// MockRecordService is a mock implementation of service.RecordService
type MockRecordService struct {
	recordSleepFunc    func(ctx context.Context, userID int64, durationText string, today time.Time) (*domain.SleepRecord, error)
	recordCaloriesFunc func(ctx context.Context, userID int64, amount int, today time.Time) (*domain.CalorieRecord, error)
	recordWorkoutFunc  func(ctx context.Context, userID int64, durationText, activity string, today time.Time) (*domain.WorkoutRecord, error)
	historyFunc        func(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) (*domain.RecordListResponse, error)
}

func (m *MockRecordService) RecordSleep(ctx context.Context, userID int64, durationText string, today time.Time) (*domain.SleepRecord, error) {
	if m.recordSleepFunc != nil {
		return m.recordSleepFunc(ctx, userID, durationText, today)
	}
	return &domain.SleepRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      today.Format("2006-01-02"),
		Hours:     7.5,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockRecordService) RecordCalories(ctx context.Context, userID int64, amount int, today time.Time) (*domain.CalorieRecord, error) {
	if m.recordCaloriesFunc != nil {
		return m.recordCaloriesFunc(ctx, userID, amount, today)
	}
	return &domain.CalorieRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      today.Format("2006-01-02"),
		Amount:    amount,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockRecordService) RecordWorkout(ctx context.Context, userID int64, durationText, activity string, today time.Time) (*domain.WorkoutRecord, error) {
	if m.recordWorkoutFunc != nil {
		return m.recordWorkoutFunc(ctx, userID, durationText, activity, today)
	}
	return &domain.WorkoutRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          today.Format("2006-01-02"),
		DurationHours: 1.5,
		ActivityType:  activity,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockRecordService) History(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, metric, filter)
	}
	return &domain.RecordListResponse{
		Data:       []domain.RecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockReportService is a mock implementation of service.ReportService
type MockReportService struct {
	weeklyReportFunc   func(ctx context.Context, userID int64, today time.Time) (string, error)
	advisoryDigestFunc func(ctx context.Context, userID int64, today time.Time) (*domain.Digest, error)
}

func (m *MockReportService) WeeklyReport(ctx context.Context, userID int64, today time.Time) (string, error) {
	if m.weeklyReportFunc != nil {
		return m.weeklyReportFunc(ctx, userID, today)
	}
	return "📊 Статистика за последние 7 дней:\n", nil
}

func (m *MockReportService) AdvisoryDigest(ctx context.Context, userID int64, today time.Time) (*domain.Digest, error) {
	if m.advisoryDigestFunc != nil {
		return m.advisoryDigestFunc(ctx, userID, today)
	}
	return &domain.Digest{}, nil
}

// MockSeriesService is a mock implementation of service.SeriesService
type MockSeriesService struct {
	weeklySeriesFunc func(ctx context.Context, userID int64, today time.Time) (*domain.WeeklySeries, error)
}

func (m *MockSeriesService) WeeklySeries(ctx context.Context, userID int64, today time.Time) (*domain.WeeklySeries, error) {
	if m.weeklySeriesFunc != nil {
		return m.weeklySeriesFunc(ctx, userID, today)
	}
	return &domain.WeeklySeries{HasData: false}, nil
}

// MockAdviceService is a mock implementation of service.AdviceService
type MockAdviceService struct {
	adviseFunc func(ctx context.Context, userID int64, today time.Time) (string, error)
}

func (m *MockAdviceService) Advise(ctx context.Context, userID int64, today time.Time) (string, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID, today)
	}
	return "Спите больше.", nil
}
