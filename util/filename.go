// Package util provides small helpers shared across the CLI.
package util

import (
	"fmt"
	"time"
)

// BackupFilename returns the default export filename for the given
// time, e.g. "printverse-backup-2026-08-27.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("printverse-backup-%s.json", t.Format("2006-01-02"))
}
