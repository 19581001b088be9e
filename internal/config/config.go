package config

import (
	"github.com/cricketpro/cricket-scoring-service/internal/logger"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host               string   `mapstructure:"host"`
	Port               int      `mapstructure:"port"`
	ShutdownTimeoutSec int      `mapstructure:"shutdown_timeout_sec"`
	CORSOrigins        []string `mapstructure:"cors_origins"`
}

// Backup controls the file-backed snapshot store and startup reconciliation.
type Backup struct {
	Path             string `mapstructure:"path"`
	ReconcileOnStart bool   `mapstructure:"reconcile_on_start"`
}

type Config struct {
	Server Server              `mapstructure:"server"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Backup Backup              `mapstructure:"backup"`
}
