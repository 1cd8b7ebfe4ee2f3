package constants

import "time"

// View represents a screen of the application
type View string

const (
	AppName            = "tododia"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tododia/tododia.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TrialDuration is the length of the free trial, fixed at first login
	TrialDuration = 7 * 24 * time.Hour

	// TrialDays is TrialDuration expressed in whole days
	TrialDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tododia-"
	BackupFileSuffix = ".db"

	// Reminder constants
	ReminderPollInterval   = 10 * time.Second
	NotifierLockfileName   = "tododia-notifier.lock"
	NotificationDurationMs = 5000
	NotificationTitle      = "Todo Dia: Lembrete"
	TrayAppIdentifier      = "com.julianstephens.tododia"

	// View constants
	ViewLogin     View = "login"
	ViewWelcome   View = "welcome"
	ViewAudit     View = "audit"
	ViewPlanning  View = "planning"
	ViewDashboard View = "dashboard"
	ViewExpired   View = "expired"
)

// StarterHabits are the habit titles offered on the login screen
var StarterHabits = []string{
	"Meditar",
	"Exercitar",
	"Ler 10 páginas",
	"Beber 2L de água",
	"Planejar o dia",
}
