package domain

import "errors"

var (
	// ErrInvalidDuration marks time input that matches no accepted grammar
	// or falls outside the 0-24h range.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidAmount marks a non-positive calorie amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingActivity marks a workout submitted without an activity label.
	ErrMissingActivity = errors.New("missing activity type")
	// ErrInvalidMetric marks a metric name outside sleep/calories/workouts.
	// This is a caller bug, not user input.
	ErrInvalidMetric = errors.New("invalid metric")
	// ErrStorage wraps record store failures so the transport layer can tell
	// "temporarily unavailable" apart from bad input.
	ErrStorage = errors.New("storage unavailable")
)
