package domain

import "fmt"

// Metric identifies one of the tracked measurement kinds.
type Metric string

const (
	MetricSleep    Metric = "sleep"
	MetricCalories Metric = "calories"
	MetricWorkouts Metric = "workouts"
)

// ParseMetric validates a metric name. An unknown name is a contract
// violation by the caller and is reported as ErrInvalidMetric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricSleep, MetricCalories, MetricWorkouts:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMetric, s)
	}
}
