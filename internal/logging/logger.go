// Package logging builds the zap logger used by quizview commands.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quizview/internal/config"
)

// New returns a JSON logger for production and a console logger otherwise,
// writing to w (stderr when nil).
func New(env string, w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if env == config.ProductionEnv {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}
