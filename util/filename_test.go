package util

import (
	"testing"
	"time"
)

func TestBackupFilename(t *testing.T) {
	ts := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)
	got := BackupFilename(ts)
	want := "printverse-backup-2026-08-27.json"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
