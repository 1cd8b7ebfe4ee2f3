package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/tododia/internal/cli"
	"github.com/julianstephens/tododia/internal/storage"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show storage path."`
	DumpAudit    *DebugDumpAuditCmd    `cmd:"" help:"Dump a user's audit as JSON."`
	DumpGoals    *DebugDumpGoalsCmd    `cmd:"" help:"Dump a user's goals as JSON."`
	DumpHabits   *DebugDumpHabitsCmd   `cmd:"" help:"Dump a user's habits as JSON."`
	DumpVision   *DebugDumpVisionCmd   `cmd:"" help:"Dump a user's vision board as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
	Users        *DebugUsersCmd        `cmd:"" help:"List all known usernames."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	return dumpJSON(output)
}

// resolveUser falls back to the active session when no username is given.
func resolveUser(ctx *cli.Context, username string) (string, error) {
	if username != "" {
		return username, nil
	}
	sess, err := ctx.Store.GetSession()
	if errors.Is(err, storage.ErrNoSession) {
		return "", fmt.Errorf("no username given and no active session")
	}
	if err != nil {
		return "", err
	}
	return sess.Username, nil
}

type DebugDumpAuditCmd struct {
	Username string `arg:"" optional:"" help:"Username (default: active session)."`
}

func (cmd *DebugDumpAuditCmd) Run(ctx *cli.Context) error {
	username, err := resolveUser(ctx, cmd.Username)
	if err != nil {
		return err
	}
	audit, err := ctx.Store.GetAudit(username)
	if err != nil {
		return fmt.Errorf("failed to get audit: %w", err)
	}
	return dumpJSON(audit)
}

type DebugDumpGoalsCmd struct {
	Username string `arg:"" optional:"" help:"Username (default: active session)."`
}

func (cmd *DebugDumpGoalsCmd) Run(ctx *cli.Context) error {
	username, err := resolveUser(ctx, cmd.Username)
	if err != nil {
		return err
	}
	goals, err := ctx.Store.GetGoals(username)
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}
	return dumpJSON(goals)
}

type DebugDumpHabitsCmd struct {
	Username string `arg:"" optional:"" help:"Username (default: active session)."`
}

func (cmd *DebugDumpHabitsCmd) Run(ctx *cli.Context) error {
	username, err := resolveUser(ctx, cmd.Username)
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetHabits(username)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	return dumpJSON(habits)
}

type DebugDumpVisionCmd struct {
	Username string `arg:"" optional:"" help:"Username (default: active session)."`
}

func (cmd *DebugDumpVisionCmd) Run(ctx *cli.Context) error {
	username, err := resolveUser(ctx, cmd.Username)
	if err != nil {
		return err
	}
	vision, err := ctx.Store.GetVision(username)
	if err != nil {
		return fmt.Errorf("failed to get vision board: %w", err)
	}
	return dumpJSON(vision)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return dumpJSON(settings)
}

type DebugUsersCmd struct{}

func (cmd *DebugUsersCmd) Run(ctx *cli.Context) error {
	usernames, err := ctx.Store.GetAllUsernames()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	return dumpJSON(usernames)
}

func dumpJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
