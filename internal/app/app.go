// Package app wires configuration, logging, and services for the CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/services/allocation"
	"github.com/bobmcallan/folio/internal/services/report"
)

// App holds all initialized services. It is the shared core used by
// cmd/folio.
type App struct {
	Config            *common.Config
	Logger            *common.Logger
	AllocationService interfaces.AllocationService
	ReportService     interfaces.ReportService
	StartupTime       time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, and services.
// configPath may be empty, in which case the default resolution logic
// is used: FOLIO_CONFIG, then folio.toml next to the binary, then the
// development fallback.
func NewApp(configPath string) (*App, error) {
	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	allocationService := allocation.NewService(logger)
	reportService := report.NewService(config, logger)

	return &App{
		Config:            config,
		Logger:            logger,
		AllocationService: allocationService,
		ReportService:     reportService,
		StartupTime:       time.Now(),
	}, nil
}
