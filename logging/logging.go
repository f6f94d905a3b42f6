// Package logging builds the zap logger shared by the viewers.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/automoto/tilecaster/config"
)

// New builds a logger from cfg writing to stderr.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	return zapConfig(cfg).Build()
}

// NewFile builds a logger from cfg writing to path. The terminal viewer
// uses it so log lines do not corrupt the screen. An empty path discards
// all output.
func NewFile(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zapCfg := zapConfig(cfg)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	return zapCfg.Build()
}

// zapConfig maps cfg onto a zap config. Unknown levels fall back to info;
// the "json" format selects the production encoder, anything else the
// console one.
func zapConfig(cfg config.LoggingConfig) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}
