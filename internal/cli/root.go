package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tododia/internal/backup"
	"github.com/julianstephens/tododia/internal/logger"
	"github.com/julianstephens/tododia/internal/session"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/tracker"
	"github.com/julianstephens/tododia/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Session *session.Manager
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// RequireTracker restores the stored session and returns the hydrated
// domain state. Commands that mutate or display per-user data call this.
func (c *Context) RequireTracker() (*tracker.Tracker, error) {
	if err := c.Session.Restore(); err != nil {
		return nil, err
	}
	t, err := c.Session.Tracker()
	if errors.Is(err, session.ErrNotLoggedIn) {
		return nil, fmt.Errorf("not logged in, run 'tododia login <username>' first")
	}
	if errors.Is(err, session.ErrTrialExpired) {
		return nil, fmt.Errorf("your 7-day trial has expired")
	}
	return t, err
}

// Today returns today's date string in the configured timezone.
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", err
	}
	return utils.GetTodayFromSettings(settings)
}
