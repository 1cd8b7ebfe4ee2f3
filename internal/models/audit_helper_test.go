package models

import (
	"strings"
	"testing"

	"github.com/julianstephens/tododia/internal/constants"
)

func TestGenerateManifesto(t *testing.T) {
	tests := []struct {
		name  string
		audit AuditData
		want  string
	}{
		{
			"all answers",
			AuditData{
				DesiredIdentity: "uma corredora",
				MainObstacles:   "preguiça",
				WhyItMatters:    "quero viver mais",
			},
			"Eu sou uma corredora. Nada de preguiça me impede. Eu faço isso porque quero viver mais.",
		},
		{
			"identity only",
			AuditData{DesiredIdentity: "uma corredora"},
			"Eu sou uma corredora.",
		},
		{
			"no answers",
			AuditData{},
			"",
		},
		{
			"existing manifesto wins",
			AuditData{
				DesiredIdentity: "uma corredora",
				Manifesto:       "Minha frase.",
			},
			"Minha frase.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateManifesto(tt.audit); got != tt.want {
				t.Errorf("GenerateManifesto() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultAudit(t *testing.T) {
	audit := DefaultAudit()
	if audit.Sentiment != constants.DefaultSentiment {
		t.Errorf("sentiment = %d, want %d", audit.Sentiment, constants.DefaultSentiment)
	}
	if audit.Manifesto != "" {
		t.Errorf("manifesto = %q", audit.Manifesto)
	}
}

func TestMapToAuditOverlaysDefaults(t *testing.T) {
	got, err := MapToAudit(map[string]string{
		"desired_identity": "writer",
		"unknown_field":    "ignored",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.DesiredIdentity != "writer" {
		t.Errorf("desired = %q", got.DesiredIdentity)
	}
	if got.Sentiment != constants.DefaultSentiment {
		t.Errorf("sentiment = %d, default lost", got.Sentiment)
	}

	if _, err := MapToAudit(map[string]string{"sentiment": "lots"}); err == nil {
		t.Error("expected error for unparseable sentiment")
	}
}

func TestAuditMapRoundTrip(t *testing.T) {
	audit := AuditData{
		Sentiment:       80,
		CurrentIdentity: "tired",
		DesiredIdentity: "rested",
		MainObstacles:   "telas",
		WhyItMatters:    "saúde",
		Manifesto:       "Eu sou rested.",
	}

	got, err := MapToAudit(AuditToMap(audit))
	if err != nil {
		t.Fatal(err)
	}
	if got != audit {
		t.Errorf("round trip = %+v, want %+v", got, audit)
	}
}

func TestManifestoSentenceShape(t *testing.T) {
	m := GenerateManifesto(AuditData{
		DesiredIdentity: "x",
		MainObstacles:   "y",
		WhyItMatters:    "z",
	})
	if strings.Count(m, ".") != 3 {
		t.Errorf("manifesto %q does not contain three sentences", m)
	}
}
