package system

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/cli"
	"github.com/julianstephens/tododia/internal/notifier"
)

// NotifyCmd sends an ad-hoc notification through the tray app. Used
// internally and for verifying the notification pipeline.
type NotifyCmd struct {
	Text   string `arg:"" help:"Notification text."`
	DryRun bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled in settings.")
		return nil
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + c.Text)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(c.Text); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
