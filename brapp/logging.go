package brapp

import (
	"github.com/advdv/brender"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// BR_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledServeError(err error) {
	l.Logger.Error("unhandled server error", zap.Error(err))
}

func (l zapLogger) LogImplicitFlushError(err error) {
	l.Logger.Error("error while flushing implicitly", zap.Error(err))
}

func (l zapLogger) LogRenderError(site brender.Site, err error) {
	l.Logger.Error("render failed",
		zap.String("file", site.File),
		zap.Int("line", site.Line),
		zap.String("func", site.Func),
		zap.Error(err))
}

// NewBRenderLogger reports brender diagnostics to l.
func NewBRenderLogger(l *zap.Logger) brender.Logger {
	return zapLogger{l.Named("brender").Named("brapp")}
}
