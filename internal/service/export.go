package service

import (
	"fmt"

	"github.com/aldosh/aldo/internal/export"
	"github.com/aldosh/aldo/internal/ledger"
	"github.com/aldosh/aldo/internal/storage"
)

// ExportService writes the ledger to external report formats.
type ExportService struct {
	dataPath string
}

// NewExportService creates a new ExportService.
func NewExportService(dataPath string) *ExportService {
	return &ExportService{dataPath: dataPath}
}

// WriteXLSX exports the full ledger as an xlsx workbook at path.
// Returns the number of exported entries.
func (s *ExportService) WriteXLSX(path string) (int, error) {
	data, err := storage.LoadData(s.dataPath)
	if err != nil {
		return 0, err
	}

	l := ledger.FromEntries(data.Entries)
	if err := export.WriteXLSX(l, path); err != nil {
		return 0, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return l.Len(), nil
}
