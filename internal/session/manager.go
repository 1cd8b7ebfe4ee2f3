package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/logger"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/tracker"
	"github.com/julianstephens/tododia/internal/trial"
)

// nowFunc is overridable in tests
var nowFunc = time.Now

// ErrNotLoggedIn is returned when an operation needs an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrTrialExpired is returned for domain operations once the trial has
// expired; only logout is allowed from there.
var ErrTrialExpired = errors.New("trial expired")

// Manager owns the active-session identity, the view machine, and the
// hydrated domain state. It is the single entry point the UI layer and
// the CLI commands call into; nothing else touches the session pointer.
type Manager struct {
	store storage.Provider
	gate  *trial.Gate
	view  *Machine

	username string
	email    string
	daysLeft int
	data     *tracker.Tracker
}

// NewManager creates a session manager over a loaded store.
func NewManager(store storage.Provider) *Manager {
	return &Manager{
		store: store,
		gate:  trial.New(store),
		view:  NewMachine(),
	}
}

// Restore re-establishes a previously stored session at startup. With
// no stored pointer the machine stays on login. An expired trial
// short-circuits into the terminal view without hydrating domain data.
func (m *Manager) Restore() error {
	sess, err := m.store.GetSession()
	if errors.Is(err, storage.ErrNoSession) {
		m.view.Reset()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	m.username = sess.Username
	m.email = sess.Email

	status, err := m.gate.Check(m.username, nowFunc())
	if err != nil {
		return err
	}
	if status.Expired {
		m.daysLeft = 0
		m.view.ForceExpired()
		logger.Info("Session restored into expired trial", "user", m.username)
		return nil
	}
	m.daysLeft = status.DaysLeft

	return m.hydrateAndRoute()
}

// Login records the active user, activates the trial on first login,
// merges any starter habits into the persisted set, and hydrates.
func (m *Manager) Login(username, email string, starterHabits []string) error {
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	if err := m.store.SetSession(models.Session{Username: username, Email: email}); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	m.username = username
	m.email = email

	if _, err := m.gate.Activate(username, nowFunc()); err != nil {
		return err
	}

	if len(starterHabits) > 0 {
		existing, err := m.store.GetHabits(username)
		if err != nil {
			return fmt.Errorf("failed to load habits for merge: %w", err)
		}
		merged := tracker.MergeStarterHabits(existing, starterHabits)
		if len(merged) != len(existing) {
			if err := m.store.SaveHabits(username, merged); err != nil {
				return fmt.Errorf("failed to save merged habits: %w", err)
			}
		}
	}

	status, err := m.gate.Check(username, nowFunc())
	if err != nil {
		return err
	}
	if status.Expired {
		m.daysLeft = 0
		m.view.ForceExpired()
		return nil
	}
	m.daysLeft = status.DaysLeft

	logger.Info("User logged in", "user", username, "daysLeft", m.daysLeft)
	return m.hydrateAndRoute()
}

// hydrateAndRoute loads domain data and picks the landing view:
// dashboard when any goals exist, welcome otherwise.
func (m *Manager) hydrateAndRoute() error {
	data, err := tracker.Hydrate(m.store, m.username)
	if err != nil {
		return err
	}
	m.data = data

	m.view.Reset()
	if len(data.Goals) > 0 {
		return m.view.GoTo(constants.ViewDashboard)
	}
	return m.view.GoTo(constants.ViewWelcome)
}

// Logout clears only the active-session pointer. Persisted domain data
// and the trial activation timestamp are left untouched.
func (m *Manager) Logout() error {
	if err := m.store.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	logger.Info("User logged out", "user", m.username)
	m.username = ""
	m.email = ""
	m.daysLeft = 0
	m.data = nil
	m.view.Reset()
	return nil
}

// Tracker exposes the hydrated domain state for mutation. It refuses
// once the trial has expired and before login.
func (m *Manager) Tracker() (*tracker.Tracker, error) {
	if m.view.Expired() {
		return nil, ErrTrialExpired
	}
	if m.data == nil || m.username == "" {
		return nil, ErrNotLoggedIn
	}
	return m.data, nil
}

// GoTo requests a view transition. With no active user every request
// except expired falls back to the login view.
func (m *Manager) GoTo(to constants.View) error {
	if m.username == "" && to != constants.ViewExpired {
		m.view.Reset()
		return nil
	}
	return m.view.GoTo(to)
}

// View returns the active view.
func (m *Manager) View() constants.View {
	return m.view.Current()
}

// Expired reports whether the session sits in the terminal expired view.
func (m *Manager) Expired() bool {
	return m.view.Expired()
}

// Username returns the active username, empty when logged out.
func (m *Manager) Username() string { return m.username }

// Email returns the active user's email.
func (m *Manager) Email() string { return m.email }

// DaysLeft returns the trial days remaining computed at login/restore.
// It is not re-evaluated live; the next restore picks up the change.
func (m *Manager) DaysLeft() int { return m.daysLeft }
