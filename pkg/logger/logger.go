package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"resume/pkg/config"
)

// New builds the application logger: console output for local runs,
// JSON everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsLocal() {
		zc := zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zc.Build()
	}
	return zap.NewProduction()
}

// Nop is used by tests and tools that do not care about log output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
