package session

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/constants"
)

// Machine tracks which screen is active and which transitions are
// legal. Once forced into the expired view it is terminal: the only way
// out is logout, which resets the machine entirely.
type Machine struct {
	current constants.View
}

// NewMachine returns a machine sitting on the login view.
func NewMachine() *Machine {
	return &Machine{current: constants.ViewLogin}
}

// Current returns the active view.
func (m *Machine) Current() constants.View {
	return m.current
}

// Expired reports whether the machine has reached the terminal view.
func (m *Machine) Expired() bool {
	return m.current == constants.ViewExpired
}

// ForceExpired moves the machine into the terminal expired view. Legal
// from every state.
func (m *Machine) ForceExpired() {
	m.current = constants.ViewExpired
}

// Reset returns the machine to the login view. This is the logout path
// and the only transition permitted out of expired.
func (m *Machine) Reset() {
	m.current = constants.ViewLogin
}

// GoTo transitions to the requested view, rejecting anything the screen
// flow does not allow.
func (m *Machine) GoTo(to constants.View) error {
	if !canTransition(m.current, to) {
		return fmt.Errorf("illegal view transition: %s -> %s", m.current, to)
	}
	m.current = to
	return nil
}

func canTransition(from, to constants.View) bool {
	// Expired is terminal; only Reset leaves it.
	if from == constants.ViewExpired {
		return false
	}
	switch to {
	case constants.ViewExpired:
		// Forced from anywhere.
		return true
	case constants.ViewWelcome:
		// Login lands here, and the home affordance returns here from
		// any authenticated view.
		return from != constants.ViewWelcome
	case constants.ViewAudit:
		return from == constants.ViewWelcome
	case constants.ViewPlanning:
		// Audit save moves forward; the dashboard offers an edit path back.
		return from == constants.ViewAudit || from == constants.ViewDashboard
	case constants.ViewDashboard:
		return from == constants.ViewLogin ||
			from == constants.ViewWelcome ||
			from == constants.ViewPlanning
	case constants.ViewLogin:
		// Always reachable as a fallback when no user is active.
		return true
	default:
		return false
	}
}
