package models

// Habit represents a recurring practice to track
type Habit struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CompletedDates []string `json:"completed_dates"`         // distinct YYYY-MM-DD strings, kept sorted ascending
	Streak         int      `json:"streak"`                  // cached; recomputed on every toggle
	ReminderTime   string   `json:"reminder_time,omitempty"` // HH:MM format
}

// CompletedOn reports whether the habit was recorded done on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
