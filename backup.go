package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultBackupDir is the backup directory, relative to the working directory.
var DefaultBackupDir = filepath.Join("src", "backups")

// backupLayout is a timestamp with millisecond precision that is safe in file names.
const backupLayout = "2006-01-02T15-04-05.000"

// maxBackupAttempts bounds the search for a free backup name within one clock tick.
const maxBackupAttempts = 1000

// BackupWriter writes timestamped snapshots of the expense list.
// Snapshots are never read back.
type BackupWriter struct {
	dir string
	now func() time.Time
}

// NewBackupWriter returns a writer creating snapshots in dir.
func NewBackupWriter(dir string) *BackupWriter {
	return &BackupWriter{dir: dir, now: time.Now}
}

// Dir returns the backup directory.
func (b *BackupWriter) Dir() string { return b.dir }

// Snapshot writes l to a new file and returns its path.
//
// The file name is derived from the current time. Files are created
// exclusively: when the name is already taken a counter suffix is added,
// so a snapshot never overwrites an earlier one.
func (b *BackupWriter) Snapshot(l Expenses) (string, error) {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", &OpError{Op: "snapshot", Path: b.dir, Kind: ErrIO, Err: err}
	}
	stamp := b.now().Format(backupLayout)

	for i := 0; i < maxBackupAttempts; i++ {
		name := stamp + ".json"
		if i > 0 {
			name = fmt.Sprintf("%s-%d.json", stamp, i)
		}
		path := filepath.Join(b.dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", &OpError{Op: "snapshot", Path: path, Kind: ErrIO, Err: err}
		}
		if err := writeSnapshot(f, l); err != nil {
			os.Remove(path)
			return "", &OpError{Op: "snapshot", Path: path, Kind: ErrIO, Err: err}
		}
		slog.Debug("backup written", "path", path, "count", len(l))
		return path, nil
	}
	return "", &OpError{Op: "snapshot", Path: b.dir, Kind: ErrIO, Err: fmt.Errorf("no free backup name for %s", stamp)}
}

func writeSnapshot(f *os.File, l Expenses) error {
	if err := EncodeExpenses(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
