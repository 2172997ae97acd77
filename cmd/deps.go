package cmd

import (
	"io"
	"os"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/service"
	"github.com/aldosh/aldo/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	DataPath   func() (string, error)
	ConfigPath func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		DataPath:   storage.GetDataPath,
		ConfigPath: config.GetConfigPath,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// newServices builds the service layer over the configured paths.
func newServices() (*service.Services, error) {
	dataPath, err := deps.DataPath()
	if err != nil {
		return nil, err
	}
	configPath, err := deps.ConfigPath()
	if err != nil {
		return nil, err
	}
	return service.NewServicesWithPaths(dataPath, configPath), nil
}
