package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/ordmap/internal/config"
)

// newLogger builds a zap logger from the [log] section. --debug and
// --verbose lower the level to debug, --quiet raises it to error.
func newLogger(cfg config.LogConfig, debug, verbose, quiet bool) (*zap.Logger, error) {
	level, err := cfg.ParsedLevel()
	if err != nil {
		return nil, err
	}
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case debug, verbose:
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Encoding
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return zc.Build()
}
