package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newJSONStoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tododia.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateBackupCopiesStoreFile(t *testing.T) {
	path := newJSONStoreFile(t, `{"version":1}`)
	m := NewManager(path)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, "tododia-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("backup name = %q", name)
	}
	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content = %q", data)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error for missing store file")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	path := newJSONStoreFile(t, `{}`)
	m := NewManager(path)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		backupPath, err := m.CreateBackup()
		if err != nil {
			t.Fatal(err)
		}
		if seen[backupPath] {
			t.Fatalf("duplicate backup path %s", backupPath)
		}
		seen[backupPath] = true
	}
}

func TestListBackups(t *testing.T) {
	path := newJSONStoreFile(t, `{}`)
	m := NewManager(path)

	if backups, err := m.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("fresh list = %v, %v", backups, err)
	}

	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	// Files that don't match the naming scheme are ignored
	for _, stray := range []string{"notes.txt", "tododia-garbage.json", "tododia-20250310-0900.db"} {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), stray), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("backups = %d, want 1", len(backups))
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	path := newJSONStoreFile(t, `{}`)
	m := NewManager(path)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	names := []string{
		"tododia-20250308-0900.json",
		"tododia-20250310-0900.json",
		"tododia-20250309-0900.json",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("backups = %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
			break
		}
	}
	if filepath.Base(backups[0].Path) != "tododia-20250310-0900.json" {
		t.Errorf("newest = %s", filepath.Base(backups[0].Path))
	}
}

func TestRotateBackups(t *testing.T) {
	path := newJSONStoreFile(t, `{}`)
	m := NewManager(path)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed more than the retention limit of dated backups
	for day := 1; day <= 16; day++ {
		name := filepath.Join(m.GetBackupDir(),
			fmt.Sprintf("tododia-202502%02d-0900.json", day))
		if err := os.WriteFile(name, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	// A fresh backup triggers rotation down to the limit
	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 14 {
		t.Errorf("backups after rotation = %d, want 14", len(backups))
	}
	// The oldest seeded backups are the ones removed
	oldest := backups[len(backups)-1]
	if strings.Contains(oldest.Path, "20250201") || strings.Contains(oldest.Path, "20250202") {
		t.Errorf("oldest survivor = %s", oldest.Path)
	}
}

func TestRestoreBackup(t *testing.T) {
	path := newJSONStoreFile(t, `{"version":1,"marker":"original"}`)
	m := NewManager(path)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(`{"version":1,"marker":"changed"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "original") {
		t.Errorf("restored content = %s", data)
	}

	// Restore takes a safety backup of the replaced file first
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("backups = %d, want pre-restore safety copy", len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	path := newJSONStoreFile(t, `{}`)
	m := NewManager(path)
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
