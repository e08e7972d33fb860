// Package logging provides a small structured-logging seam so the
// bignum kernel's diagnostic output (multiplication algorithm dispatch
// and division calls; parse failures are not logged) can be redirected
// into a host application's own logger.
// Reconstructed from the teacher's internal/logging test expectations
// (only doc.go and logger_test.go were present in the retrieved pack;
// logger.go itself was not retrieved) and scoped down to what this
// kernel actually logs.
package logging

import (
	"github.com/rs/zerolog"
)

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err builds an error-valued Field under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the seam the kernel logs through. Implementations must be
// safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// nopLogger discards everything; it is the default until a caller
// installs a real one via bignum.SetLogger.
type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Error(string, ...Field) {}

// Nop returns a Logger that discards all output.
func Nop() Logger { return nopLogger{} }

// ZerologAdapter adapts a *zerolog.Logger to the Logger interface,
// following the teacher's dependency choice for structured logging.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps zl as a Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: zl}
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	ev := a.logger.Debug()
	applyFields(ev, fields)
	ev.Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, fields ...Field) {
	ev := a.logger.Error()
	applyFields(ev, fields)
	ev.Msg(msg)
}

func applyFields(ev *zerolog.Event, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev.Str(f.Key, v)
		case int:
			ev.Int(f.Key, v)
		case uint64:
			ev.Uint64(f.Key, v)
		case float64:
			ev.Float64(f.Key, v)
		case error:
			ev.AnErr(f.Key, v)
		case nil:
			// omit
		default:
			ev.Interface(f.Key, v)
		}
	}
}
