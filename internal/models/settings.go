package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminder notifications are delivered
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for system timezone
	ReminderPollSec      int    `json:"reminder_poll_sec"`     // reminder scanner poll interval in seconds
}
