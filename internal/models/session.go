package models

// Session is the global active-session pointer. It identifies which
// user's namespace is live; it never carries domain data.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserData is one user's full persisted namespace. StartDate is the
// trial activation timestamp in epoch milliseconds, zero when the user
// has never activated.
type UserData struct {
	StartDate int64             `json:"start_date,omitempty"`
	Audit     map[string]string `json:"audit,omitempty"`
	Goals     []SmartGoal       `json:"goals,omitempty"`
	Vision    []VisionBoardItem `json:"vision,omitempty"`
	Habits    []Habit           `json:"habits,omitempty"`
}
