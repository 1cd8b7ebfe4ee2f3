package utils

import (
	"testing"
	"time"
)

func TestDayAndMinuteString(t *testing.T) {
	ts := time.Date(2025, 3, 5, 7, 8, 59, 0, time.UTC)
	if got := DayString(ts); got != "2025-03-05" {
		t.Errorf("DayString = %q", got)
	}
	if got := MinuteString(ts); got != "07:08" {
		t.Errorf("MinuteString = %q", got)
	}
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-10", "2025-03-09"},
		{"2025-03-01", "2025-02-28"},
		{"2024-03-01", "2024-02-29"},
		{"2025-01-01", "2024-12-31"},
	}
	for _, tt := range tests {
		got, err := PreviousDay(tt.in)
		if err != nil {
			t.Errorf("PreviousDay(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PreviousDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := PreviousDay("10/03/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "07:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = false", s)
		}
	}
	invalid := []string{"", "7:30pm", "25:99", "12:60", "noon"}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = true", s)
		}
	}
}

func TestValidateDateFormat(t *testing.T) {
	if !ValidateDateFormat("2025-12-31") {
		t.Error("valid date rejected")
	}
	for _, s := range []string{"", "2025-13-01", "31/12/2025", "2025-02-30"} {
		if ValidateDateFormat(s) {
			t.Errorf("ValidateDateFormat(%q) = true", s)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, s := range []string{"", "Local", "UTC", "America/Sao_Paulo"} {
		if !ValidateTimezone(s) {
			t.Errorf("ValidateTimezone(%q) = false", s)
		}
	}
	if ValidateTimezone("Mars/Olympus") {
		t.Error("bogus timezone accepted")
	}
}

func TestGetTodayInTimezone(t *testing.T) {
	got, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Now().UTC().Format("2006-01-02")
	if got != want {
		t.Errorf("today = %q, want %q", got, want)
	}

	if _, err := GetTodayInTimezone("Mars/Olympus"); err == nil {
		t.Error("expected error for bogus timezone")
	}
}
