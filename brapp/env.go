package brapp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	readinessCheckPath() string
	logLevel() zapcore.Level
	otelExporter() string
	bufferLimit() int
	renderSize() int
}

// BaseEnvironment contains the environment variables every app reads.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port               int           `env:"BR_PORT,required"`
	ServiceName        string        `env:"BR_SERVICE_NAME,required"`
	ReadinessCheckPath string        `env:"BR_READINESS_CHECK_PATH" envDefault:"/health"`
	LogLevel           zapcore.Level `env:"BR_LOG_LEVEL" envDefault:"info"`
	OtelExporter       string        `env:"BR_OTEL_EXPORTER" envDefault:"stdout"`
	// BufferLimit caps the bytes a handler may write to its buffered response, -1 disables the cap.
	BufferLimit int `env:"BR_BUFFER_LIMIT" envDefault:"-1"`
	// RenderSize is the size estimate used for render buffers by [Runtime].
	RenderSize int `env:"BR_RENDER_SIZE" envDefault:"1024"`
}

func (e BaseEnvironment) port() int                  { return e.Port }
func (e BaseEnvironment) serviceName() string        { return e.ServiceName }
func (e BaseEnvironment) readinessCheckPath() string { return e.ReadinessCheckPath }
func (e BaseEnvironment) logLevel() zapcore.Level    { return e.LogLevel }
func (e BaseEnvironment) otelExporter() string       { return e.OtelExporter }
func (e BaseEnvironment) bufferLimit() int           { return e.BufferLimit }
func (e BaseEnvironment) renderSize() int            { return e.RenderSize }

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
