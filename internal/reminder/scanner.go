package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/logger"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/utils"
)

var nowFunc = time.Now

// NotifyFunc delivers a single reminder message.
type NotifyFunc func(text string) error

// Scanner polls the active user's habits and fires a notification when
// a habit's reminder time matches the current minute and the habit has
// not been completed today. Each minute fires at most once per poll
// loop even though the poll period is shorter than a minute.
type Scanner struct {
	store  storage.Provider
	notify NotifyFunc

	// IgnoreDisabled makes the scan run even when notifications are
	// turned off in settings. Dry-run scans set this so they can show
	// what would fire.
	IgnoreDisabled bool

	lastCheckedMinute string
}

func NewScanner(store storage.Provider, notify NotifyFunc) *Scanner {
	return &Scanner{store: store, notify: notify}
}

// Due returns the habits whose reminder matches the minute of now and
// that are still unchecked for now's day.
func Due(habits []models.Habit, now time.Time) []models.Habit {
	minute := utils.MinuteString(now)
	today := utils.DayString(now)

	var due []models.Habit
	for _, h := range habits {
		if h.ReminderTime == "" || h.ReminderTime != minute {
			continue
		}
		if h.CompletedOn(today) {
			continue
		}
		due = append(due, h)
	}
	return due
}

// CheckNow performs one scan tick. It is a no-op when there is no
// active session, notifications are disabled, or the current minute
// was already checked. Returns the habits it notified for.
func (s *Scanner) CheckNow(now time.Time) ([]models.Habit, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if !settings.NotificationsEnabled && !s.IgnoreDisabled {
		return nil, nil
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, err
	}
	now = now.In(loc)

	minute := utils.MinuteString(now)
	if minute == s.lastCheckedMinute {
		return nil, nil
	}
	s.lastCheckedMinute = minute

	sess, err := s.store.GetSession()
	if errors.Is(err, storage.ErrNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	habits, err := s.store.GetHabits(sess.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	due := Due(habits, now)
	for _, h := range due {
		text := fmt.Sprintf("Hora de: %s", h.Title)
		if err := s.notify(text); err != nil {
			logger.Warn("Failed to deliver reminder", "habit", h.Title, "err", err)
			continue
		}
		logger.Info("Reminder delivered", "habit", h.Title, "at", minute)
	}
	return due, nil
}

// Run polls until ctx is cancelled. The poll period comes from
// settings, falling back to the default when unset or invalid.
func (s *Scanner) Run(ctx context.Context) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	interval := constants.ReminderPollInterval
	if settings.ReminderPollSec > 0 {
		interval = time.Duration(settings.ReminderPollSec) * time.Second
	}

	logger.Info("Reminder scanner started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder scanner stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.CheckNow(nowFunc()); err != nil {
				logger.Warn("Reminder scan failed", "err", err)
			}
		}
	}
}
