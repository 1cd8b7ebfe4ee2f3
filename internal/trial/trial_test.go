package trial

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "tododia.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestCompute(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	startMs := start.UnixMilli()

	tests := []struct {
		name         string
		now          time.Time
		wantExpired  bool
		wantDaysLeft int
	}{
		{
			name:         "at activation",
			now:          start,
			wantExpired:  false,
			wantDaysLeft: 7,
		},
		{
			name:         "one hour in",
			now:          start.Add(time.Hour),
			wantExpired:  false,
			wantDaysLeft: 7,
		},
		{
			name:         "six and a half days in",
			now:          start.Add(6*24*time.Hour + 12*time.Hour),
			wantExpired:  false,
			wantDaysLeft: 1,
		},
		{
			name:         "exactly seven days",
			now:          start.Add(7 * 24 * time.Hour),
			wantExpired:  false,
			wantDaysLeft: 0,
		},
		{
			name:        "just past seven days",
			now:         start.Add(7*24*time.Hour + time.Millisecond),
			wantExpired: true,
		},
		{
			name:        "eight days in",
			now:         start.Add(8 * 24 * time.Hour),
			wantExpired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(startMs, tt.now)
			if got.Expired != tt.wantExpired {
				t.Errorf("Expired = %t, want %t", got.Expired, tt.wantExpired)
			}
			if got.DaysLeft != tt.wantDaysLeft {
				t.Errorf("DaysLeft = %d, want %d", got.DaysLeft, tt.wantDaysLeft)
			}
		})
	}
}

func TestComputeClampsDaysLeft(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// A start date in the future should never report more than the full trial
	got := Compute(start.UnixMilli(), start.Add(-48*time.Hour))
	if got.Expired {
		t.Error("future start date reported expired")
	}
	if got.DaysLeft != constants.TrialDays {
		t.Errorf("DaysLeft = %d, want clamp to %d", got.DaysLeft, constants.TrialDays)
	}
}

func TestGateActivateIdempotent(t *testing.T) {
	store := newTestStore(t)
	gate := New(store)

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	first, err := gate.Activate("ana", t0)
	if err != nil {
		t.Fatal(err)
	}
	if first != t0.UnixMilli() {
		t.Errorf("first activation = %d, want %d", first, t0.UnixMilli())
	}

	// A later activation must return the original timestamp
	second, err := gate.Activate("ana", t0.Add(72*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Errorf("re-activation moved the start date: %d != %d", second, first)
	}
}

func TestGateCheck(t *testing.T) {
	store := newTestStore(t)
	gate := New(store)

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// Never activated: full trial remaining
	status, err := gate.Check("ana", t0)
	if err != nil {
		t.Fatal(err)
	}
	if status.Expired || status.DaysLeft != constants.TrialDays {
		t.Errorf("unactivated status = %+v, want full trial", status)
	}

	if _, err := gate.Activate("ana", t0); err != nil {
		t.Fatal(err)
	}

	status, err = gate.Check("ana", t0.Add(8*24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !status.Expired {
		t.Error("expected expired after 8 days")
	}

	// Another user's trial is independent
	status, err = gate.Check("bruno", t0.Add(8*24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if status.Expired {
		t.Error("unactivated user inherited expiry")
	}
}
