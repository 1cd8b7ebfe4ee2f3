package cli

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("notifications: %t\n", settings.NotificationsEnabled)
	fmt.Printf("timezone:      %s\n", settings.Timezone)
	fmt.Printf("poll-sec:      %d\n", settings.ReminderPollSec)
	return nil
}

type SettingsSetCmd struct {
	Notifications *bool   `help:"Enable or disable habit reminder notifications."`
	Timezone      *string `help:"IANA timezone name (e.g. America/Sao_Paulo) or 'Local'."`
	PollSec       *int    `help:"Reminder scanner poll interval in seconds."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Notifications != nil {
		settings.NotificationsEnabled = *c.Notifications
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
	}
	if c.PollSec != nil {
		if *c.PollSec < 1 {
			return fmt.Errorf("poll interval must be at least 1 second")
		}
		settings.ReminderPollSec = *c.PollSec
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings saved.")
	return nil
}
