package flipnet

import "github.com/meshgeo/flipout/meshcore"

// Logger is the injected verbose-progress sink. It is never a package-level
// global: callers that want per-iteration progress lines pass one via
// Options.Logger; the default NopLogger discards everything.
type Logger interface {
	Logf(format string, args ...any)
}

// NopLogger discards every message. It is the zero-value-safe default for
// Options.Logger.
type NopLogger struct{}

// Logf implements Logger by doing nothing.
func (NopLogger) Logf(string, ...any) {}

// PrintfLogger adapts any func(string, ...any) (e.g. log.Printf, t.Logf in
// tests) into a Logger.
type PrintfLogger func(format string, args ...any)

// Logf implements Logger.
func (f PrintfLogger) Logf(format string, args ...any) { f(format, args...) }

// logJointFound emits the standard log line for a found flexible joint.
func logJointFound(l Logger, iteration int, v meshcore.VertexHandle) {
	l.Logf("[FlipNetwork] Iteration %d: Flexible joint at vertex %v", iteration, v)
}
