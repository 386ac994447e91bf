package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
)

var seriesToday = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestBuildWeeklySeriesEmpty(t *testing.T) {
	series := BuildWeeklySeries(&domain.WeekData{}, seriesToday)

	if series.HasData {
		t.Error("HasData = true for empty input")
	}
	if len(series.Dates) != 7 {
		t.Fatalf("len(Dates) = %d, want 7", len(series.Dates))
	}
	if series.Dates[0] != "2025-03-04" || series.Dates[6] != "2025-03-10" {
		t.Errorf("window = [%s .. %s], want [2025-03-04 .. 2025-03-10]", series.Dates[0], series.Dates[6])
	}
	for i := range series.Dates {
		if !math.IsNaN(series.Sleep[i]) {
			t.Errorf("Sleep[%d] = %v, want NaN", i, series.Sleep[i])
		}
		if !math.IsNaN(series.Calories[i]) {
			t.Errorf("Calories[%d] = %v, want NaN", i, series.Calories[i])
		}
		if series.Workouts[i] != 0 {
			t.Errorf("Workouts[%d] = %v, want 0", i, series.Workouts[i])
		}
	}
}

func TestBuildWeeklySeriesSingleSleepDay(t *testing.T) {
	data := &domain.WeekData{
		Sleep: []domain.SleepRecord{sleepRec("2025-03-06", 7.5)},
	}

	series := BuildWeeklySeries(data, seriesToday)

	if !series.HasData {
		t.Error("HasData = false with one sleep record")
	}
	for i, d := range series.Dates {
		if d == "2025-03-06" {
			if series.Sleep[i] != 7.5 {
				t.Errorf("Sleep[%s] = %v, want 7.5", d, series.Sleep[i])
			}
			continue
		}
		if !math.IsNaN(series.Sleep[i]) {
			t.Errorf("Sleep[%s] = %v, want NaN", d, series.Sleep[i])
		}
	}
}

func TestBuildWeeklySeriesSleepLastEntryWins(t *testing.T) {
	data := &domain.WeekData{
		Sleep: []domain.SleepRecord{
			sleepRec("2025-03-06", 7.5),
			sleepRec("2025-03-06", 6.0),
		},
	}

	series := BuildWeeklySeries(data, seriesToday)

	if got := series.Sleep[2]; got != 6.0 {
		t.Errorf("Sleep[2025-03-06] = %v, want 6.0 (later record)", got)
	}
}

func TestBuildWeeklySeriesWorkoutsSumPerDay(t *testing.T) {
	data := &domain.WeekData{
		Workouts: []domain.WorkoutRecord{
			workoutRec("2025-03-05", "Бег", 1.0),
			workoutRec("2025-03-05", "Йога", 0.25),
			workoutRec("2025-03-09", "Штанга", 1.5),
		},
	}

	series := BuildWeeklySeries(data, seriesToday)

	want := []float64{0, 1.25, 0, 0, 0, 1.5, 0}
	for i, w := range want {
		if series.Workouts[i] != w {
			t.Errorf("Workouts[%s] = %v, want %v", series.Dates[i], series.Workouts[i], w)
		}
	}
}

func TestBuildWeeklySeriesIgnoresRecordsOutsideWindow(t *testing.T) {
	data := &domain.WeekData{
		Workouts: []domain.WorkoutRecord{
			workoutRec("2025-03-03", "Бег", 2.0),
		},
	}

	series := BuildWeeklySeries(data, seriesToday)

	for i, v := range series.Workouts {
		if v != 0 {
			t.Errorf("Workouts[%s] = %v, want 0", series.Dates[i], v)
		}
	}
}

func TestBuildWeeklySeriesCalories(t *testing.T) {
	data := &domain.WeekData{
		Calories: []domain.CalorieRecord{
			calorieRec("2025-03-04", 1800),
			calorieRec("2025-03-10", 2200),
		},
	}

	series := BuildWeeklySeries(data, seriesToday)

	if series.Calories[0] != 1800 {
		t.Errorf("Calories[0] = %v, want 1800", series.Calories[0])
	}
	if series.Calories[6] != 2200 {
		t.Errorf("Calories[6] = %v, want 2200", series.Calories[6])
	}
	if !math.IsNaN(series.Calories[3]) {
		t.Errorf("Calories[3] = %v, want NaN", series.Calories[3])
	}
}

func TestSeriesServiceWeeklySeries(t *testing.T) {
	repo := NewMockRecordRepository()
	repo.sleep = []domain.SleepRecord{sleepRec("2025-03-10", 8.0)}

	svc := NewSeriesService(repo)
	series, err := svc.WeeklySeries(context.Background(), 1, seriesToday)
	if err != nil {
		t.Fatalf("WeeklySeries() error = %v", err)
	}
	if !series.HasData {
		t.Error("HasData = false")
	}
	if series.Sleep[6] != 8.0 {
		t.Errorf("Sleep[6] = %v, want 8.0", series.Sleep[6])
	}
}

func TestSeriesServicePropagatesStorageError(t *testing.T) {
	repo := NewMockRecordRepository()
	repo.SetError(domain.ErrStorage)

	svc := NewSeriesService(repo)
	if _, err := svc.WeeklySeries(context.Background(), 1, seriesToday); err == nil {
		t.Fatal("expected storage error")
	}
}
