package constants

const (
	// General Settings
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"
	SettingReminderPollSec      = "reminder_poll_sec"

	// Default Settings Values
	DefaultNotificationsEnabled = false
	DefaultReminderPollSec      = 10
	DefaultTimezone             = "Local" // Use system local timezone by default

	// Audit defaults
	DefaultSentiment = 50
	MinSentiment     = 0
	MaxSentiment     = 100
)
