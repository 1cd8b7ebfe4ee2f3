package models

import "time"

// KPIEntry records one observed value of a goal's KPI. Entries are
// append-only and insertion order is chronological; values may regress.
type KPIEntry struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SmartGoal is a goal captured through the SMART planning form.
type SmartGoal struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Specific   string     `json:"specific"`
	Measurable string     `json:"measurable"`
	Attainable string     `json:"attainable"`
	Relevant   string     `json:"relevant"`
	Timebound  string     `json:"timebound"`
	Deadline   string     `json:"deadline,omitempty"` // YYYY-MM-DD format
	KPIName    string     `json:"kpi_name"`
	KPITarget  float64    `json:"kpi_target"`
	KPICurrent float64    `json:"kpi_current"`
	KPIUnit    string     `json:"kpi_unit"`
	History    []KPIEntry `json:"history"`
	Completed  bool       `json:"completed"`
}
