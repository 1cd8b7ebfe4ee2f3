package cli

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/models"
)

type AuditCmd struct {
	Show      AuditShowCmd      `cmd:"" help:"Show the current self-audit." default:"1"`
	Set       AuditSetCmd       `cmd:"" help:"Answer or update the self-audit."`
	Manifesto AuditManifestoCmd `cmd:"" help:"Show the personal manifesto."`
}

type AuditShowCmd struct{}

func (c *AuditShowCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	a := t.Audit
	fmt.Printf("Sentiment:        %d/100\n", a.Sentiment)
	fmt.Printf("Current identity: %s\n", orDash(a.CurrentIdentity))
	fmt.Printf("Desired identity: %s\n", orDash(a.DesiredIdentity))
	fmt.Printf("Main obstacles:   %s\n", orDash(a.MainObstacles))
	fmt.Printf("Why it matters:   %s\n", orDash(a.WhyItMatters))
	if a.Manifesto != "" {
		fmt.Printf("\nManifesto: %s\n", a.Manifesto)
	}
	return nil
}

type AuditSetCmd struct {
	Sentiment       *int    `help:"How you feel today (0-100)."`
	CurrentIdentity *string `help:"Who you are today."`
	DesiredIdentity *string `help:"Who you want to become."`
	MainObstacles   *string `help:"What stands in your way."`
	WhyItMatters    *string `help:"Why the change matters."`
	Manifesto       *string `help:"Override the generated manifesto."`
}

func (c *AuditSetCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	audit := t.Audit
	if c.Sentiment != nil {
		audit.Sentiment = *c.Sentiment
	}
	if c.CurrentIdentity != nil {
		audit.CurrentIdentity = *c.CurrentIdentity
	}
	if c.DesiredIdentity != nil {
		audit.DesiredIdentity = *c.DesiredIdentity
	}
	if c.MainObstacles != nil {
		audit.MainObstacles = *c.MainObstacles
	}
	if c.WhyItMatters != nil {
		audit.WhyItMatters = *c.WhyItMatters
	}
	if c.Manifesto != nil {
		audit.Manifesto = *c.Manifesto
	}

	if err := t.SaveAudit(audit); err != nil {
		return err
	}

	fmt.Println("Audit saved.")
	if t.Audit.Manifesto != "" {
		fmt.Printf("Manifesto: %s\n", t.Audit.Manifesto)
	}
	return nil
}

type AuditManifestoCmd struct {
	Regenerate bool `help:"Discard the stored manifesto and rebuild it from the audit answers."`
}

func (c *AuditManifestoCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	audit := t.Audit
	if c.Regenerate {
		audit.Manifesto = ""
		audit.Manifesto = models.GenerateManifesto(audit)
		if err := t.SaveAudit(audit); err != nil {
			return err
		}
	}

	if t.Audit.Manifesto == "" {
		fmt.Println("No manifesto yet. Answer the audit first with 'tododia audit set'.")
		return nil
	}
	fmt.Println(t.Audit.Manifesto)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
