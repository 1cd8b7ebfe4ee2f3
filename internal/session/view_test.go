package session

import (
	"testing"

	"github.com/julianstephens/tododia/internal/constants"
)

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name string
		from constants.View
		to   constants.View
		ok   bool
	}{
		{"login to dashboard", constants.ViewLogin, constants.ViewDashboard, true},
		{"login to welcome", constants.ViewLogin, constants.ViewWelcome, true},
		{"login to audit", constants.ViewLogin, constants.ViewAudit, false},
		{"welcome to audit", constants.ViewWelcome, constants.ViewAudit, true},
		{"welcome to dashboard", constants.ViewWelcome, constants.ViewDashboard, true},
		{"welcome to welcome", constants.ViewWelcome, constants.ViewWelcome, false},
		{"welcome to planning", constants.ViewWelcome, constants.ViewPlanning, false},
		{"audit to planning", constants.ViewAudit, constants.ViewPlanning, true},
		{"audit to dashboard", constants.ViewAudit, constants.ViewDashboard, false},
		{"planning to dashboard", constants.ViewPlanning, constants.ViewDashboard, true},
		{"dashboard to planning", constants.ViewDashboard, constants.ViewPlanning, true},
		{"dashboard to welcome", constants.ViewDashboard, constants.ViewWelcome, true},
		{"dashboard to audit", constants.ViewDashboard, constants.ViewAudit, false},
		{"dashboard to login", constants.ViewDashboard, constants.ViewLogin, true},
		{"anywhere to expired", constants.ViewPlanning, constants.ViewExpired, true},
		{"expired is terminal", constants.ViewExpired, constants.ViewLogin, false},
		{"expired to dashboard", constants.ViewExpired, constants.ViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Machine{current: tt.from}
			err := m.GoTo(tt.to)
			if tt.ok && err != nil {
				t.Errorf("GoTo(%s) from %s: %v", tt.to, tt.from, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("GoTo(%s) from %s: expected error", tt.to, tt.from)
			}
			if tt.ok && m.Current() != tt.to {
				t.Errorf("current = %s, want %s", m.Current(), tt.to)
			}
			if !tt.ok && m.Current() != tt.from {
				t.Errorf("failed transition moved the machine to %s", m.Current())
			}
		})
	}
}

func TestMachineForceExpiredAndReset(t *testing.T) {
	m := NewMachine()
	if m.Current() != constants.ViewLogin {
		t.Fatalf("new machine starts at %s", m.Current())
	}

	m.ForceExpired()
	if !m.Expired() {
		t.Fatal("machine not expired after ForceExpired")
	}
	if err := m.GoTo(constants.ViewDashboard); err == nil {
		t.Error("expired machine accepted a transition")
	}

	m.Reset()
	if m.Current() != constants.ViewLogin || m.Expired() {
		t.Errorf("reset left machine at %s", m.Current())
	}
}
