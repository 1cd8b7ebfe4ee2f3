package models

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingReminderPollSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.ReminderPollSec); err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_poll_sec: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingReminderPollSec:      fmt.Sprintf("%d", settings.ReminderPollSec),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.ReminderPollSec == 0 {
		settings.ReminderPollSec = constants.DefaultReminderPollSec
	}
}
