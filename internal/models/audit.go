package models

// AuditData holds one user's self-assessment. There is exactly one per user
// and it is replaced wholesale on save, never merged field-by-field.
type AuditData struct {
	Sentiment       int    `json:"sentiment"` // 0-100
	CurrentIdentity string `json:"current_identity"`
	DesiredIdentity string `json:"desired_identity"`
	MainObstacles   string `json:"main_obstacles"`
	WhyItMatters    string `json:"why_it_matters"`
	Manifesto       string `json:"manifesto"` // generated, may be empty
}
