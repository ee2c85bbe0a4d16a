package brapptest

import (
	"strconv"
	"testing"
)

// Env provides a chainable builder for setting [brapp.BaseEnvironment] env vars
// via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [brapp.BaseEnvironment] env vars to sensible test defaults.
// Port is required because each test must use a unique port to avoid collisions.
//
// Defaults:
//   - BR_SERVICE_NAME: "test"
//   - BR_READINESS_CHECK_PATH: "/health"
//   - BR_LOG_LEVEL: "info"
//   - BR_OTEL_EXPORTER: "none"
//   - BR_BUFFER_LIMIT: "-1"
//   - BR_RENDER_SIZE: "1024"
//
// Use the returned [Env] to override individual values:
//
//	brapptest.SetBaseEnv(t, 18095).ServiceName("shop").RenderSize(8192)
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("BR_PORT", strconv.Itoa(port))
	t.Setenv("BR_SERVICE_NAME", "test")
	t.Setenv("BR_READINESS_CHECK_PATH", "/health")
	t.Setenv("BR_LOG_LEVEL", "info")
	t.Setenv("BR_OTEL_EXPORTER", "none")
	t.Setenv("BR_BUFFER_LIMIT", "-1")
	t.Setenv("BR_RENDER_SIZE", "1024")
	return &Env{t: t}
}

// ServiceName overrides BR_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("BR_SERVICE_NAME", name)
	return e
}

// ReadinessCheckPath overrides BR_READINESS_CHECK_PATH.
func (e *Env) ReadinessCheckPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("BR_READINESS_CHECK_PATH", path)
	return e
}

// LogLevel overrides BR_LOG_LEVEL.
func (e *Env) LogLevel(level string) *Env {
	e.t.Helper()
	e.t.Setenv("BR_LOG_LEVEL", level)
	return e
}

// OtelExporter overrides BR_OTEL_EXPORTER.
func (e *Env) OtelExporter(exp string) *Env {
	e.t.Helper()
	e.t.Setenv("BR_OTEL_EXPORTER", exp)
	return e
}

// BufferLimit overrides BR_BUFFER_LIMIT.
func (e *Env) BufferLimit(n int) *Env {
	e.t.Helper()
	e.t.Setenv("BR_BUFFER_LIMIT", strconv.Itoa(n))
	return e
}

// RenderSize overrides BR_RENDER_SIZE.
func (e *Env) RenderSize(n int) *Env {
	e.t.Helper()
	e.t.Setenv("BR_RENDER_SIZE", strconv.Itoa(n))
	return e
}
