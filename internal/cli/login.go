package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/storage"
)

type LoginCmd struct {
	Username string   `arg:"" help:"Username to log in as."`
	Email    string   `help:"Email address." default:""`
	Starter  []string `help:"Starter habit titles to seed (repeatable)." short:"s"`
	Suggest  bool     `help:"Seed the built-in starter habit catalog."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	starters := c.Starter
	if c.Suggest {
		starters = append(starters, constants.StarterHabits...)
	}

	if err := ctx.Session.Login(c.Username, c.Email, starters); err != nil {
		return err
	}

	if ctx.Session.Expired() {
		fmt.Printf("Logged in as %s, but your trial has expired.\n", c.Username)
		return nil
	}

	fmt.Printf("Logged in as %s (%d day(s) left in trial)\n", c.Username, ctx.Session.DaysLeft())
	if len(starters) > 0 {
		fmt.Printf("Seeded starter habits: %d candidate(s)\n", len(starters))
	}
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	sess, err := ctx.Store.GetSession()
	if errors.Is(err, storage.ErrNoSession) {
		fmt.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := ctx.Session.Restore(); err != nil {
		return err
	}
	if err := ctx.Session.Logout(); err != nil {
		return err
	}

	fmt.Printf("Logged out %s. Your data is kept for when you return.\n", sess.Username)
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	sess, err := ctx.Store.GetSession()
	if errors.Is(err, storage.ErrNoSession) {
		fmt.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as: %s\n", sess.Username)
	if sess.Email != "" {
		fmt.Printf("Email: %s\n", sess.Email)
	}

	if err := ctx.Session.Restore(); err != nil {
		return err
	}
	if ctx.Session.Expired() {
		fmt.Println("Trial: expired")
	} else {
		fmt.Printf("Trial: %d day(s) left\n", ctx.Session.DaysLeft())
	}
	return nil
}
