package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/pkg/pagination"
)

var recordToday = time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)

func TestRecordSleep(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	rec, err := svc.RecordSleep(context.Background(), 42, "7:30", recordToday)
	if err != nil {
		t.Fatalf("RecordSleep() error = %v", err)
	}
	if rec.Hours != 7.5 {
		t.Errorf("Hours = %v, want 7.5", rec.Hours)
	}
	if rec.Date != "2025-03-10" {
		t.Errorf("Date = %s, want 2025-03-10", rec.Date)
	}
	if rec.UserID != 42 {
		t.Errorf("UserID = %d, want 42", rec.UserID)
	}
	if len(repo.insertedSleep) != 1 {
		t.Errorf("inserted %d records, want 1", len(repo.insertedSleep))
	}
}

func TestRecordSleepInvalidDuration(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	tests := []string{"", "abc", "25:00", "7:60", "24.5", "0", "0:00"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := svc.RecordSleep(context.Background(), 1, input, recordToday)
			if !errors.Is(err, domain.ErrInvalidDuration) {
				t.Errorf("RecordSleep(%q) error = %v, want ErrInvalidDuration", input, err)
			}
		})
	}
	if len(repo.insertedSleep) != 0 {
		t.Error("invalid input reached the repository")
	}
}

func TestRecordCalories(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	rec, err := svc.RecordCalories(context.Background(), 7, 2200, recordToday)
	if err != nil {
		t.Fatalf("RecordCalories() error = %v", err)
	}
	if rec.Amount != 2200 || rec.Date != "2025-03-10" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestRecordCaloriesInvalidAmount(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	for _, amount := range []int{0, -100} {
		if _, err := svc.RecordCalories(context.Background(), 1, amount, recordToday); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("RecordCalories(%d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestRecordWorkout(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	rec, err := svc.RecordWorkout(context.Background(), 5, "1:30", "бег", recordToday)
	if err != nil {
		t.Fatalf("RecordWorkout() error = %v", err)
	}
	if rec.DurationHours != 1.5 {
		t.Errorf("DurationHours = %v, want 1.5", rec.DurationHours)
	}
	if rec.ActivityType != "Бег" {
		t.Errorf("ActivityType = %q, want %q", rec.ActivityType, "Бег")
	}
}

func TestRecordWorkoutActivityNormalization(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	tests := []struct {
		input string
		want  string
	}{
		{"бег", "Бег"},
		{"БЕГ", "Бег"},
		{"  йога  ", "Йога"},
		{"running", "Running"},
	}
	for _, tt := range tests {
		rec, err := svc.RecordWorkout(context.Background(), 1, "1.0", tt.input, recordToday)
		if err != nil {
			t.Fatalf("RecordWorkout(%q) error = %v", tt.input, err)
		}
		if rec.ActivityType != tt.want {
			t.Errorf("ActivityType for %q = %q, want %q", tt.input, rec.ActivityType, tt.want)
		}
	}
}

func TestRecordWorkoutMissingActivity(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	for _, activity := range []string{"", "   "} {
		if _, err := svc.RecordWorkout(context.Background(), 1, "1:00", activity, recordToday); !errors.Is(err, domain.ErrMissingActivity) {
			t.Errorf("RecordWorkout(activity=%q) error = %v, want ErrMissingActivity", activity, err)
		}
	}
}

func TestRecordWorkoutInvalidDuration(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	if _, err := svc.RecordWorkout(context.Background(), 1, "бег", "1:00", recordToday); !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("swapped arguments should fail duration parsing, got %v", err)
	}
}

func TestRecordPropagatesStorageError(t *testing.T) {
	repo := NewMockRecordRepository()
	repo.SetError(domain.ErrStorage)
	svc := NewRecordService(repo)

	if _, err := svc.RecordSleep(context.Background(), 1, "8:00", recordToday); !errors.Is(err, domain.ErrStorage) {
		t.Errorf("RecordSleep error = %v, want ErrStorage", err)
	}
	if _, err := svc.RecordCalories(context.Background(), 1, 2000, recordToday); !errors.Is(err, domain.ErrStorage) {
		t.Errorf("RecordCalories error = %v, want ErrStorage", err)
	}
	if _, err := svc.RecordWorkout(context.Background(), 1, "1:00", "Бег", recordToday); !errors.Is(err, domain.ErrStorage) {
		t.Errorf("RecordWorkout error = %v, want ErrStorage", err)
	}
}

func TestHistoryPagination(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	// Repository returns limit+1 rows to signal another page.
	for i := 0; i < 3; i++ {
		rec := sleepRec("2025-03-0"+string(rune('4'+i)), 7.0)
		repo.listResult = append(repo.listResult, rec.ToResponse())
	}

	result, err := svc.History(context.Background(), 1, domain.MetricSleep, domain.RecordFilter{Limit: 2})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(result.Data))
	}
	if !result.Pagination.HasMore {
		t.Error("HasMore = false, want true")
	}
	if result.Pagination.NextCursor == "" {
		t.Fatal("NextCursor is empty")
	}

	cursor, err := pagination.DecodeCursor(result.Pagination.NextCursor)
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if cursor.Date != result.Data[1].Date {
		t.Errorf("cursor date = %s, want %s", cursor.Date, result.Data[1].Date)
	}
}

func TestHistoryEmptyResult(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	result, err := svc.History(context.Background(), 1, domain.MetricCalories, domain.RecordFilter{})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if result.Data == nil {
		t.Error("Data is nil, want empty slice")
	}
	if result.Pagination.HasMore {
		t.Error("HasMore = true for empty result")
	}
}

func TestHistoryInvalidMetric(t *testing.T) {
	repo := NewMockRecordRepository()
	svc := NewRecordService(repo)

	if _, err := svc.History(context.Background(), 1, domain.Metric("steps"), domain.RecordFilter{}); !errors.Is(err, domain.ErrInvalidMetric) {
		t.Errorf("History(steps) error = %v, want ErrInvalidMetric", err)
	}
}
