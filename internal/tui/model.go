package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tododia/internal/session"
	"github.com/julianstephens/tododia/internal/storage"
)

type LoginFormModel struct {
	Username string
	Email    string
	Starters []string
}

type AuditFormModel struct {
	Sentiment       string
	CurrentIdentity string
	DesiredIdentity string
	MainObstacles   string
	WhyItMatters    string
}

type GoalFormModel struct {
	Title      string
	Specific   string
	Measurable string
	Attainable string
	Relevant   string
	Timebound  string
	Deadline   string
	KPIName    string
	KPITarget  string
	KPIUnit    string
}

type HabitFormModel struct {
	Title    string
	Reminder string
}

type VisionFormModel struct {
	Image   string
	Caption string
}

// formKind tracks which sub-form the active huh form belongs to, since
// some views (dashboard) can open more than one.
type formKind int

const (
	formNone formKind = iota
	formLogin
	formAudit
	formGoal
	formHabit
	formVision
)

type Model struct {
	store   storage.Provider
	manager *session.Manager
	keys    KeyMap
	help    help.Model

	form       *huh.Form
	activeForm formKind
	loginForm  *LoginFormModel
	auditForm  *AuditFormModel
	goalForm   *GoalFormModel
	habitForm  *HabitFormModel
	visionForm *VisionFormModel

	cursor    int
	quitting  bool
	width     int
	height    int
	formError string
	statusMsg string
}

func NewModel(store storage.Provider, manager *session.Manager) Model {
	m := Model{
		store:   store,
		manager: manager,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	// Restore a previous session; a failure here just lands on login
	if err := manager.Restore(); err != nil {
		m.formError = err.Error()
	}

	m.syncForm()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}
