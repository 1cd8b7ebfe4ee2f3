package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/tododia/internal/notifier"
	"github.com/julianstephens/tododia/internal/reminder"
)

type RemindCmd struct {
	Check RemindCheckCmd `cmd:"" help:"Run a single reminder scan." default:"1"`
	Watch RemindWatchCmd `cmd:"" help:"Keep scanning for due reminders until interrupted."`
}

type RemindCheckCmd struct {
	DryRun bool `help:"Print due reminders without sending notifications."`
}

func (c *RemindCheckCmd) Run(ctx *Context) error {
	scanner := reminder.NewScanner(ctx.Store, notifyFunc(c.DryRun))
	scanner.IgnoreDisabled = c.DryRun
	due, err := scanner.CheckNow(time.Now())
	if err != nil {
		return err
	}

	if len(due) == 0 {
		fmt.Println("No reminders due right now.")
		return nil
	}
	for _, h := range due {
		fmt.Printf("Due: %s (%s)\n", h.Title, h.ReminderTime)
	}
	return nil
}

type RemindWatchCmd struct {
	DryRun bool `help:"Print due reminders without sending notifications."`
}

func (c *RemindWatchCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.NotificationsEnabled && !c.DryRun {
		fmt.Println("Notifications are disabled. Enable them with:")
		fmt.Println("  tododia settings set --notifications=true")
		return nil
	}

	scanner := reminder.NewScanner(ctx.Store, notifyFunc(c.DryRun))
	scanner.IgnoreDisabled = c.DryRun

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching for habit reminders. Press Ctrl+C to stop.")
	if err := scanner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func notifyFunc(dryRun bool) reminder.NotifyFunc {
	if dryRun {
		return func(text string) error {
			fmt.Printf("[dry-run] %s\n", text)
			return nil
		}
	}
	n := notifier.New()
	return n.Notify
}
