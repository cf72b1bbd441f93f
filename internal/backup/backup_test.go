package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeData(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "vitalog.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write data fixture: %v", err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeData(t, dir, `{"waterEntries":[]}`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want directory %s", backupPath, mgr.GetBackupDir())
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(got) != `{"waterEntries":[]}` {
		t.Errorf("backup content = %q, want original document", got)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("ListBackups() = %d backups, want 1", len(backups))
	}
}

func TestCreateBackupWithoutData(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "vitalog.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() without a data document should fail")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "vitalog.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %d, want 0", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeData(t, dir, `{"version":"old"}`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"version":"new"}`), 0600); err != nil {
		t.Fatalf("failed to overwrite data: %v", err)
	}

	if err := mgr.RestoreBackup(filepath.Base(backupPath)); err != nil {
		t.Fatalf("RestoreBackup() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read restored data: %v", err)
	}
	if string(got) != `{"version":"old"}` {
		t.Errorf("restored content = %q, want old version", got)
	}

	// The pre-restore state was itself backed up.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("ListBackups() = %d backups after restore, want at least 2", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeData(t, dir, `{}`)
	mgr := NewManager(path)

	if err := mgr.RestoreBackup("vitalog-nope.json"); err == nil {
		t.Error("RestoreBackup() of a missing file should fail")
	}
}
