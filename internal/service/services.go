// Package service provides the business logic layer for the aldo
// application. Each service follows the read-entire-state, compute,
// write-entire-state discipline: state is loaded at the start of an
// operation and persisted before the operation reports success.
package service

import (
	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/storage"
)

// Services holds all service instances used by the application.
type Services struct {
	Ledger  *LedgerService
	Invoice *InvoiceService
	Export  *ExportService
	Config  *ConfigService
}

// NewServices creates a Services instance with the default paths.
func NewServices() (*Services, error) {
	dataPath, err := storage.GetDataPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(dataPath, configPath), nil
}

// NewServicesWithPaths creates a Services instance with custom paths
// (useful for testing).
func NewServicesWithPaths(dataPath, configPath string) *Services {
	return &Services{
		Ledger:  NewLedgerService(dataPath),
		Invoice: NewInvoiceService(dataPath, configPath),
		Export:  NewExportService(dataPath),
		Config:  NewConfigService(configPath),
	}
}
