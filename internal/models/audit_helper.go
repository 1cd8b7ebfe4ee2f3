package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tododia/internal/constants"
)

// DefaultAudit returns the audit record a fresh user starts with.
func DefaultAudit() AuditData {
	return AuditData{
		Sentiment: constants.DefaultSentiment,
	}
}

// MapToAudit converts a map of key-value pairs to an AuditData struct,
// overlaying stored fields onto the defaults. Records written by older
// versions of the app simply leave newer fields at their default.
func MapToAudit(data map[string]string) (AuditData, error) {
	audit := DefaultAudit()

	for key, value := range data {
		switch key {
		case "sentiment":
			if _, err := fmt.Sscanf(value, "%d", &audit.Sentiment); err != nil {
				return AuditData{}, fmt.Errorf("parsing sentiment: %w", err)
			}
		case "current_identity":
			audit.CurrentIdentity = value
		case "desired_identity":
			audit.DesiredIdentity = value
		case "main_obstacles":
			audit.MainObstacles = value
		case "why_it_matters":
			audit.WhyItMatters = value
		case "manifesto":
			audit.Manifesto = value
		}
	}
	return audit, nil
}

// AuditToMap converts an AuditData struct to a map of key-value pairs.
func AuditToMap(audit AuditData) map[string]string {
	return map[string]string{
		"sentiment":        fmt.Sprintf("%d", audit.Sentiment),
		"current_identity": audit.CurrentIdentity,
		"desired_identity": audit.DesiredIdentity,
		"main_obstacles":   audit.MainObstacles,
		"why_it_matters":   audit.WhyItMatters,
		"manifesto":        audit.Manifesto,
	}
}

// GenerateManifesto builds the "doer" statement from the audit answers.
// Returns the existing manifesto untouched when one is already present.
func GenerateManifesto(audit AuditData) string {
	if audit.Manifesto != "" {
		return audit.Manifesto
	}

	var parts []string
	if audit.DesiredIdentity != "" {
		parts = append(parts, fmt.Sprintf("Eu sou %s.", audit.DesiredIdentity))
	}
	if audit.MainObstacles != "" {
		parts = append(parts, fmt.Sprintf("Nada de %s me impede.", audit.MainObstacles))
	}
	if audit.WhyItMatters != "" {
		parts = append(parts, fmt.Sprintf("Eu faço isso porque %s.", audit.WhyItMatters))
	}
	return strings.Join(parts, " ")
}
