package system

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/tododia/internal/cli"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage"
)

func newJSONDestination(t *testing.T) storage.Provider {
	t.Helper()
	dest := storage.NewJSONStore(filepath.Join(t.TempDir(), "dest.json"))
	if err := dest.Init(); err != nil {
		t.Fatal(err)
	}
	if err := dest.Load(); err != nil {
		t.Fatal(err)
	}
	return dest
}

func TestMigrateDataFromLoggedOutSQLiteSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := storage.NewSQLiteStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}
	if err := src.SetStartDate("ana", 1700000000000); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveGoals("ana", []models.SmartGoal{{ID: "g1", Title: "Run"}}); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveHabits("ana", []models.Habit{{ID: "h1", Title: "Meditar"}}); err != nil {
		t.Fatal(err)
	}
	// No session: the user is logged out
	if err := src.Close(); err != nil {
		t.Fatal(err)
	}

	dest := newJSONDestination(t)
	cmd := &InitCmd{}
	if err := cmd.migrateData(&cli.Context{Store: dest}, srcPath); err != nil {
		t.Fatalf("migration from logged-out source: %v", err)
	}

	if _, err := dest.GetSession(); !errors.Is(err, storage.ErrNoSession) {
		t.Errorf("destination session error = %v, want ErrNoSession", err)
	}
	start, err := dest.GetStartDate("ana")
	if err != nil || start != 1700000000000 {
		t.Errorf("start = %d, %v", start, err)
	}
	goals, err := dest.GetGoals("ana")
	if err != nil || len(goals) != 1 || goals[0].Title != "Run" {
		t.Errorf("goals = %+v, %v", goals, err)
	}
	habits, err := dest.GetHabits("ana")
	if err != nil || len(habits) != 1 || habits[0].Title != "Meditar" {
		t.Errorf("habits = %+v, %v", habits, err)
	}
}

func TestMigrateDataCarriesActiveSession(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := storage.NewSQLiteStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}
	if err := src.SetSession(models.Session{Username: "ana", Email: "ana@example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := src.Close(); err != nil {
		t.Fatal(err)
	}

	dest := newJSONDestination(t)
	cmd := &InitCmd{}
	if err := cmd.migrateData(&cli.Context{Store: dest}, srcPath); err != nil {
		t.Fatal(err)
	}

	sess, err := dest.GetSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Username != "ana" || sess.Email != "ana@example.com" {
		t.Errorf("session = %+v", sess)
	}
}
