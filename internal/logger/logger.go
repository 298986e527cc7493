package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init replaces zap's global logger. Production-like environments log JSON at
// info level, everything else gets the colored development encoder.
func Init(environment string) error {
	var conf zap.Config
	switch environment {
	case "production", "staging":
		conf = zap.NewProductionConfig()
		conf.EncoderConfig.TimeKey = "time"
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		conf = zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(l.With(zap.String("env", environment)))

	return nil
}
