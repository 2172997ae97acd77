// Package storage persists the aldo data file: the hours ledger and the
// invoice records. The whole file is read at process start and written
// back after each mutating command, using write-temp-then-rename so a
// reader never observes a partial write.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/entry"
	"github.com/aldosh/aldo/internal/invoice"
)

// DataFile is the name of the JSON data file in the config directory.
const DataFile = "ledger.json"

// Data is the full durable state outside the config file: every hour
// entry plus the generated/confirmed invoice records.
type Data struct {
	Entries  []entry.HourEntry `json:"entries"`
	Invoices invoice.Records   `json:"invoices"`
}

// GetDataPath returns the path to the data file, creating the config
// directory if it doesn't exist.
func GetDataPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFile), nil
}

// LoadData reads the data file. A missing file yields empty data, not
// an error; a corrupt file is an error so a bad write never silently
// drops the ledger.
func LoadData(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Data{Entries: []entry.HourEntry{}}, nil
		}
		return Data{}, fmt.Errorf("failed to read data file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	if data.Entries == nil {
		data.Entries = []entry.HourEntry{}
	}
	return data, nil
}

// SaveData writes the data file atomically. The previous contents are
// rotated into backups first, so the last few states stay recoverable.
func SaveData(path string, data Data) error {
	if err := backupExisting(path); err != nil {
		return fmt.Errorf("failed to back up data file: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
