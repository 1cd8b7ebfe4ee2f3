package reminder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/tododia/internal/models"
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

func enableNotifications(t *testing.T, store storage.Provider) {
	t.Helper()
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.NotificationsEnabled = true
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 30, 45, 0, time.UTC)

	tests := []struct {
		name   string
		habits []models.Habit
		want   int
	}{
		{
			"matching minute",
			[]models.Habit{{ID: "h1", Title: "Meditar", ReminderTime: "07:30"}},
			1,
		},
		{
			"no reminder set",
			[]models.Habit{{ID: "h1", Title: "Meditar"}},
			0,
		},
		{
			"different minute",
			[]models.Habit{{ID: "h1", Title: "Meditar", ReminderTime: "07:31"}},
			0,
		},
		{
			"already done today",
			[]models.Habit{{
				ID: "h1", Title: "Meditar", ReminderTime: "07:30",
				CompletedDates: []string{"2025-03-10"},
			}},
			0,
		},
		{
			"done yesterday still fires",
			[]models.Habit{{
				ID: "h1", Title: "Meditar", ReminderTime: "07:30",
				CompletedDates: []string{"2025-03-09"},
			}},
			1,
		},
		{
			"mixed set",
			[]models.Habit{
				{ID: "h1", Title: "Meditar", ReminderTime: "07:30"},
				{ID: "h2", Title: "Correr", ReminderTime: "18:00"},
				{ID: "h3", Title: "Ler", ReminderTime: "07:30", CompletedDates: []string{"2025-03-10"}},
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Due(tt.habits, now)
			if len(got) != tt.want {
				t.Errorf("Due() = %d habits, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCheckNowDisabledIsNoop(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveHabits("ana", []models.Habit{{ID: "h1", Title: "Meditar", ReminderTime: "07:30"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSession(models.Session{Username: "ana"}); err != nil {
		t.Fatal(err)
	}

	var fired []string
	s := NewScanner(store, func(text string) error {
		fired = append(fired, text)
		return nil
	})

	due, err := s.CheckNow(time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 0 || len(fired) != 0 {
		t.Errorf("scan fired with notifications disabled: %v", fired)
	}
}

func TestCheckNowIgnoreDisabledStillScans(t *testing.T) {
	store := newTestStore(t)
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSession(models.Session{Username: "ana"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveHabits("ana", []models.Habit{{ID: "h1", Title: "Meditar", ReminderTime: "07:30"}}); err != nil {
		t.Fatal(err)
	}

	var fired []string
	s := NewScanner(store, func(text string) error {
		fired = append(fired, text)
		return nil
	})
	s.IgnoreDisabled = true

	// Notifications stay disabled, yet a forced scan reports due habits
	due, err := s.CheckNow(time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 || due[0].Title != "Meditar" {
		t.Errorf("due = %+v", due)
	}
	if len(fired) != 1 {
		t.Errorf("fired = %v", fired)
	}
}

func TestCheckNowNoSessionIsNoop(t *testing.T) {
	store := newTestStore(t)
	enableNotifications(t, store)

	s := NewScanner(store, func(string) error {
		t.Error("notify called without a session")
		return nil
	})
	if _, err := s.CheckNow(time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
}

func TestCheckNowFiresOncePerMinute(t *testing.T) {
	store := newTestStore(t)
	enableNotifications(t, store)
	if err := store.SetSession(models.Session{Username: "ana"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveHabits("ana", []models.Habit{{ID: "h1", Title: "Meditar", ReminderTime: "07:30"}}); err != nil {
		t.Fatal(err)
	}

	var fired []string
	s := NewScanner(store, func(text string) error {
		fired = append(fired, text)
		return nil
	})

	now := time.Date(2025, 3, 10, 7, 30, 5, 0, time.UTC)
	due, err := s.CheckNow(now)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 {
		t.Fatalf("first scan due = %d, want 1", len(due))
	}
	if len(fired) != 1 || fired[0] != "Hora de: Meditar" {
		t.Errorf("fired = %v", fired)
	}

	// A second tick within the same minute must not fire again
	due, err = s.CheckNow(now.Add(10 * time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 0 || len(fired) != 1 {
		t.Errorf("same-minute rescan fired: due=%d fired=%v", len(due), fired)
	}

	// The polling loop moves through the next minute...
	if _, err := s.CheckNow(now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if len(fired) != 1 {
		t.Errorf("non-matching minute fired: %v", fired)
	}

	// ...so the same reminder fires again the next day
	due, err = s.CheckNow(now.Add(24 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 || len(fired) != 2 {
		t.Errorf("next-day scan: due=%d fired=%v", len(due), fired)
	}
}
