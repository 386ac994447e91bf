package service

import (
	"context"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/google/uuid"
)

// MockRecordRepository is a mock implementation of repository.RecordRepository
type MockRecordRepository struct {
	sleep    []domain.SleepRecord
	calories []domain.CalorieRecord
	workouts []domain.WorkoutRecord

	listResult []domain.RecordResponse
	err        error

	insertedSleep    []*domain.SleepRecord
	insertedCalories []*domain.CalorieRecord
	insertedWorkouts []*domain.WorkoutRecord
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

func (m *MockRecordRepository) SetError(err error) {
	m.err = err
}

func (m *MockRecordRepository) InsertSleep(ctx context.Context, rec *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	m.insertedSleep = append(m.insertedSleep, rec)
	m.sleep = append(m.sleep, *rec)
	return nil
}

func (m *MockRecordRepository) InsertCalories(ctx context.Context, rec *domain.CalorieRecord) error {
	if m.err != nil {
		return m.err
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	m.insertedCalories = append(m.insertedCalories, rec)
	m.calories = append(m.calories, *rec)
	return nil
}

func (m *MockRecordRepository) InsertWorkout(ctx context.Context, rec *domain.WorkoutRecord) error {
	if m.err != nil {
		return m.err
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	m.insertedWorkouts = append(m.insertedWorkouts, rec)
	m.workouts = append(m.workouts, *rec)
	return nil
}

func (m *MockRecordRepository) WeekData(ctx context.Context, userID int64, today time.Time, nDays int) (*domain.WeekData, error) {
	if m.err != nil {
		return nil, m.err
	}
	data := &domain.WeekData{
		Sleep:    make([]domain.SleepRecord, len(m.sleep)),
		Calories: make([]domain.CalorieRecord, len(m.calories)),
		Workouts: make([]domain.WorkoutRecord, len(m.workouts)),
	}
	copy(data.Sleep, m.sleep)
	copy(data.Calories, m.calories)
	copy(data.Workouts, m.workouts)
	return data, nil
}

func (m *MockRecordRepository) List(ctx context.Context, userID int64, metric domain.Metric, filter domain.RecordFilter) ([]domain.RecordResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, err := domain.ParseMetric(string(metric)); err != nil {
		return nil, err
	}
	result := make([]domain.RecordResponse, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

// MockAdvisor is a mock implementation of llm.AdvisorLLM
type MockAdvisor struct {
	prompt string
	reply  string
	err    error
}

func (m *MockAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func sleepRec(date string, hours float64) domain.SleepRecord {
	return domain.SleepRecord{ID: uuid.New(), UserID: 1, Date: date, Hours: hours}
}

func calorieRec(date string, amount int) domain.CalorieRecord {
	return domain.CalorieRecord{ID: uuid.New(), UserID: 1, Date: date, Amount: amount}
}

func workoutRec(date, activity string, hours float64) domain.WorkoutRecord {
	return domain.WorkoutRecord{ID: uuid.New(), UserID: 1, Date: date, ActivityType: activity, DurationHours: hours}
}
