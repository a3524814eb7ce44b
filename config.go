package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the application configuration loaded from a TOML file: a
// logging section plus one [[window]] block per window to open at
// startup.
type Config struct {
	Logging LoggingConfig  `toml:"logging"`
	Windows []WindowConfig `toml:"window"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `toml:"level"`
	// Format is console or json. Empty means console.
	Format string `toml:"format"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("engine: load config %s: %w", path, err)
	}
	for i, w := range cfg.Windows {
		if w.Title == "" {
			return nil, fmt.Errorf("engine: config %s: window %d has no title", path, i)
		}
		if w.W <= 0 || w.H <= 0 {
			return nil, fmt.Errorf("engine: config %s: window %q has size %dx%d", path, w.Title, w.W, w.H)
		}
	}
	return &cfg, nil
}

// NewLogger builds a zap logger per the logging configuration.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, fmt.Errorf("engine: log level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	switch cfg.Format {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
		zc.Encoding = "console"
	case "json":
		zc.Encoding = "json"
	default:
		return nil, fmt.Errorf("engine: log format %q, want console or json", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
