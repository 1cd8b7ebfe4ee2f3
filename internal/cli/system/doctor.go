package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tododia/internal/backup"
	"github.com/julianstephens/tododia/internal/cli"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/utils"
	"github.com/julianstephens/tododia/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: Storage reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: Settings valid (only if storage is reachable)
	if storeReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: Per-user data integrity (only if storage is reachable)
	if storeReachable {
		if err := checkUserDataIntegrity(ctx); err != nil {
			fmt.Printf("❌ User data integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ User data integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ User data integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 6: Trial activations plausible (only if storage is reachable)
	if storeReachable {
		if err := checkTrialDates(ctx); err != nil {
			fmt.Printf("❌ Trial dates: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Trial dates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Trial dates: SKIPPED (storage not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also run a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("configured timezone %q is not loadable", settings.Timezone)
	}
	if settings.ReminderPollSec < 1 {
		return fmt.Errorf("reminder poll interval %d is below 1 second", settings.ReminderPollSec)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'tododia backup' to create one")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	// A clock before 2020 means the system time is broken
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports implausible year %d", now.Year())
	}
	if _, err := time.LoadLocation("UTC"); err != nil {
		return fmt.Errorf("timezone database unavailable: %w", err)
	}
	return nil
}

func checkUserDataIntegrity(ctx *cli.Context) error {
	usernames, err := ctx.Store.GetAllUsernames()
	if err != nil {
		return err
	}

	v := validation.New()
	for _, username := range usernames {
		audit, err := ctx.Store.GetAudit(username)
		if err != nil {
			return fmt.Errorf("user %s: %w", username, err)
		}
		if result := v.ValidateAudit(audit); result.HasConflicts() {
			return fmt.Errorf("user %s: %s", username, result.Conflicts[0].Description)
		}

		goals, err := ctx.Store.GetGoals(username)
		if err != nil {
			return fmt.Errorf("user %s: %w", username, err)
		}
		seen := make(map[string]bool)
		for _, g := range goals {
			if g.ID == "" {
				return fmt.Errorf("user %s: goal %q has no ID", username, g.Title)
			}
			if seen[g.ID] {
				return fmt.Errorf("user %s: duplicate goal ID %s", username, g.ID)
			}
			seen[g.ID] = true
		}

		habits, err := ctx.Store.GetHabits(username)
		if err != nil {
			return fmt.Errorf("user %s: %w", username, err)
		}
		for _, h := range habits {
			for _, day := range h.CompletedDates {
				if !utils.ValidateDateFormat(day) {
					return fmt.Errorf("user %s: habit %q has malformed completion date %q", username, h.Title, day)
				}
			}
			if h.ReminderTime != "" && !utils.ValidateTimeFormat(h.ReminderTime) {
				return fmt.Errorf("user %s: habit %q has malformed reminder time %q", username, h.Title, h.ReminderTime)
			}
		}
	}

	return nil
}

func checkTrialDates(ctx *cli.Context) error {
	usernames, err := ctx.Store.GetAllUsernames()
	if err != nil {
		return err
	}

	nowMs := time.Now().UnixMilli()
	for _, username := range usernames {
		startDate, err := ctx.Store.GetStartDate(username)
		if err != nil {
			if errors.Is(err, storage.ErrNoSession) {
				continue
			}
			return fmt.Errorf("user %s: %w", username, err)
		}
		if startDate < 0 {
			return fmt.Errorf("user %s: negative trial start date %d", username, startDate)
		}
		if startDate > nowMs {
			return fmt.Errorf("user %s: trial start date is in the future", username)
		}
	}
	return nil
}
