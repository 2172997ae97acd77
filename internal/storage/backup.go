package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files.
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep.
	MaxBackupCount = 3
)

// BackupPath returns the backup path for a data file with the given
// rotation number. Lower numbers are more recent (.bak.1 is the latest).
func BackupPath(dataPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", dataPath, BackupSuffix, n)
}

// backupExisting rotates the backups and copies the current data file
// into the .bak.1 slot. A missing data file is fine (first save).
func backupExisting(dataPath string) error {
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		return nil
	}

	if err := rotateBackups(dataPath); err != nil {
		return err
	}
	return copyFile(dataPath, BackupPath(dataPath, 1))
}

// rotateBackups shifts existing backups to make room for a new one:
// .bak.2 becomes .bak.3 and .bak.1 becomes .bak.2, dropping the oldest.
func rotateBackups(dataPath string) error {
	oldest := BackupPath(dataPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(dataPath, i)
		if _, err := os.Stat(current); os.IsNotExist(err) {
			continue
		}
		if err := os.Rename(current, BackupPath(dataPath, i+1)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
