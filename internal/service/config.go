package service

import (
	"fmt"
	"os"

	"github.com/aldosh/aldo/internal/config"
)

// ConfigService provides operations for managing configuration.
type ConfigService struct {
	configPath string
}

// NewConfigService creates a new ConfigService.
func NewConfigService(configPath string) *ConfigService {
	return &ConfigService{configPath: configPath}
}

// Get loads the current configuration, falling back to defaults when no
// config file exists yet.
func (s *ConfigService) Get() (config.Config, error) {
	return config.LoadOrDefault(s.configPath)
}

// GetPath returns the path to the config file.
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks whether the config file exists.
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Init creates a sample config file. Fails when one already exists.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}
	if err := os.WriteFile(s.configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
