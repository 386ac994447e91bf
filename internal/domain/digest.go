package domain

// Digest is the compact weekly reshaping fed to the advice prompt. Entries
// keep the store's return order; the advisor consumes raw chronology, not
// summary statistics, so nothing is sorted or aggregated here.
type Digest struct {
	Sleep    []SleepEntry    `json:"sleep"`
	Calories []CalorieEntry  `json:"calories"`
	Workouts []WorkoutEntry  `json:"workouts"`
}

type SleepEntry struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type CalorieEntry struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

type WorkoutEntry struct {
	Date          string  `json:"date"`
	ActivityType  string  `json:"activity_type"`
	DurationHours float64 `json:"duration_hours"`
}

// WeeklySeries holds chart-ready, date-aligned arrays for the weekly window.
//
// Collision and gap policy differs from the text report on purpose: the
// report averages or sums every record, while a chart needs one point per
// day. Sleep and calories take the last record per date and mark absent days
// with NaN so a gap never reads as zero; workouts sum per date and fill
// absent days with 0.0 because a zero-height bar is the intended visual.
// Do not unify these policies.
type WeeklySeries struct {
	// Dates are the window's ISO dates, oldest first, last entry is today.
	Dates []string
	// Sleep hours per date; math.NaN() marks days without a record.
	Sleep []float64
	// Calorie amounts per date; math.NaN() marks days without a record.
	Calories []float64
	// Workout hours summed per date; days without workouts hold 0.0.
	Workouts []float64
	// HasData is false iff all three metrics were empty. When false the
	// renderer must not be invoked at all.
	HasData bool
}
