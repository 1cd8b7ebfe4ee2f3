package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/tododia/internal/cli"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing storage before initialization."`
	Source string `help:"Source storage path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing storage
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized tododia storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	// Determine source store type and instantiate it. The Provider
	// wrappers translate store-local sentinels (ErrNoSession) so the
	// no-session check below holds for every source type.
	var sourceStore storage.Provider
	if strings.HasPrefix(sourcePath, "postgres://") || strings.HasPrefix(sourcePath, "postgresql://") {
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else if strings.HasSuffix(sourcePath, ".json") {
		sourceStore = storage.NewJSONStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source storage: %w", err)
	}
	defer sourceStore.Close()

	// Migrate Settings
	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	// Migrate the active session, if any
	sess, err := sourceStore.GetSession()
	if err == nil {
		if err := ctx.Store.SetSession(sess); err != nil {
			return fmt.Errorf("failed to save session to destination: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNoSession) {
		return fmt.Errorf("failed to get session from source: %w", err)
	}

	// Migrate per-user data
	usernames, err := sourceStore.GetAllUsernames()
	if err != nil {
		return fmt.Errorf("failed to list users from source: %w", err)
	}

	for _, username := range usernames {
		fmt.Printf("  Migrating user %s...\n", username)

		startDate, err := sourceStore.GetStartDate(username)
		if err != nil {
			return fmt.Errorf("failed to get trial start for %s: %w", username, err)
		}
		if startDate > 0 {
			if err := ctx.Store.SetStartDate(username, startDate); err != nil {
				return fmt.Errorf("failed to save trial start for %s: %w", username, err)
			}
		}

		audit, err := sourceStore.GetAudit(username)
		if err != nil {
			return fmt.Errorf("failed to get audit for %s: %w", username, err)
		}
		if err := ctx.Store.SaveAudit(username, audit); err != nil {
			return fmt.Errorf("failed to save audit for %s: %w", username, err)
		}

		goals, err := sourceStore.GetGoals(username)
		if err != nil {
			return fmt.Errorf("failed to get goals for %s: %w", username, err)
		}
		if err := ctx.Store.SaveGoals(username, goals); err != nil {
			return fmt.Errorf("failed to save goals for %s: %w", username, err)
		}
		fmt.Printf("    Migrated %d goals\n", len(goals))

		vision, err := sourceStore.GetVision(username)
		if err != nil {
			return fmt.Errorf("failed to get vision board for %s: %w", username, err)
		}
		if err := ctx.Store.SaveVision(username, vision); err != nil {
			return fmt.Errorf("failed to save vision board for %s: %w", username, err)
		}
		fmt.Printf("    Migrated %d vision items\n", len(vision))

		habits, err := sourceStore.GetHabits(username)
		if err != nil {
			return fmt.Errorf("failed to get habits for %s: %w", username, err)
		}
		if err := ctx.Store.SaveHabits(username, habits); err != nil {
			return fmt.Errorf("failed to save habits for %s: %w", username, err)
		}
		fmt.Printf("    Migrated %d habits\n", len(habits))
	}

	fmt.Printf("  Migrated %d user(s)\n", len(usernames))
	return nil
}
