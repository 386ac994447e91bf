package domain

import (
	"time"

	"github.com/google/uuid"
)

// The three record variants share a {user_id, date} header. Dates are stored
// as ISO YYYY-MM-DD strings, stamped with the server's local date at write
// time, so lexical comparison matches chronological order. Records are
// append-only: corrections are new rows for the same date, and same-day
// duplicates are legitimate input for aggregation.

type SleepRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_sleep_user_date" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_sleep_user_date" json:"date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

type CalorieRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_calorie_user_date" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_calorie_user_date" json:"date"`
	Amount    int       `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CalorieRecord) TableName() string {
	return "calorie_records"
}

type WorkoutRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        int64     `gorm:"not null;index:idx_workout_user_date" json:"user_id"`
	Date          string    `gorm:"type:varchar(10);not null;index:idx_workout_user_date" json:"date"`
	DurationHours float64   `gorm:"not null" json:"duration_hours"`
	ActivityType  string    `gorm:"type:varchar(128);not null" json:"activity_type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WorkoutRecord) TableName() string {
	return "workout_records"
}

// RecordSleepRequest is the request body for recording a night of sleep.
// @Description Sleep duration as free text: "8:15" or "7.5" (comma accepted).
type RecordSleepRequest struct {
	// Duration in H:MM or decimal-hours form, 0-24h exclusive
	Duration string `json:"duration" validate:"required,duration" example:"8:15"`
}

// RecordCaloriesRequest is the request body for recording calorie intake.
type RecordCaloriesRequest struct {
	// Calorie amount, positive integer
	Amount int `json:"amount" validate:"required,gt=0" example:"1800"`
}

// RecordWorkoutRequest is the request body for recording a workout.
type RecordWorkoutRequest struct {
	// Duration in H:MM or decimal-hours form, 0-24h exclusive
	Duration string `json:"duration" validate:"required,duration" example:"1:30"`
	// Free-text activity label
	Activity string `json:"activity" validate:"required" example:"Бег"`
}

// RecordResponse is the unified response shape for any stored record.
// Only the fields of the record's own variant are set.
type RecordResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"user_id"`
	Date          string    `json:"date"`
	Hours         *float64  `json:"hours,omitempty"`
	Amount        *int      `json:"amount,omitempty"`
	DurationHours *float64  `json:"duration_hours,omitempty"`
	ActivityType  *string   `json:"activity_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r *SleepRecord) ToResponse() RecordResponse {
	hours := r.Hours
	return RecordResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		Hours:     &hours,
		CreatedAt: r.CreatedAt,
	}
}

func (r *CalorieRecord) ToResponse() RecordResponse {
	amount := r.Amount
	return RecordResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		Amount:    &amount,
		CreatedAt: r.CreatedAt,
	}
}

func (r *WorkoutRecord) ToResponse() RecordResponse {
	duration := r.DurationHours
	activity := r.ActivityType
	return RecordResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          r.Date,
		DurationHours: &duration,
		ActivityType:  &activity,
		CreatedAt:     r.CreatedAt,
	}
}

// RecordListResponse is the response body for listing record history.
type RecordListResponse struct {
	Data       []RecordResponse   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// RecordFilter contains filter parameters for listing record history.
// From and To are ISO dates, both bounds inclusive.
type RecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}

// WeekData bundles one user's raw records for the three metrics over the
// weekly window. Order within each slice is whatever the store returned;
// aggregators sort where display order matters.
type WeekData struct {
	Sleep    []SleepRecord
	Calories []CalorieRecord
	Workouts []WorkoutRecord
}

// IsEmpty reports whether no metric has any record in the window.
func (w *WeekData) IsEmpty() bool {
	return len(w.Sleep) == 0 && len(w.Calories) == 0 && len(w.Workouts) == 0
}
