// Package log provides the structured logger used across this module. It
// wraps zap the same way github.com/drand/drand/common/log does, trimmed
// down to the subset this library actually needs: there is no request
// context to thread a logger through, since every operation here is a
// synchronous, stateless function of its inputs.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal logging surface this module calls. Any call site
// that wants a logger accepts this interface rather than *zap.Logger
// directly, so callers can plug in their own structured logger.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// DefaultLevel is used by Default(). It is lowered to DebugLevel when the
// process starts with PS_SIG_TEST_LOGS=debug in its environment (the
// variable is read once, at package initialization).
var DefaultLevel = InfoLevel

func init() {
	if os.Getenv("PS_SIG_TEST_LOGS") == "debug" {
		DefaultLevel = DebugLevel
	}
}

// New returns a logger writing JSON-encoded entries at the given level.
func New(level int) Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(os.Stderr), zapcore.Level(level))
	return &log{zap.New(core, zap.WithCaller(true)).Sugar()}
}

// Default returns a package-wide no-frills logger at DefaultLevel. It is
// not what a nil Logger falls back to: OrDefault substitutes Nop() instead.
func Default() Logger {
	return New(DefaultLevel)
}

// noop discards everything; returned by Nop so a nil Logger passed by a
// caller never needs a nil check at every call site.
type noop struct{}

func (noop) Debugw(string, ...interface{}) {}
func (noop) Infow(string, ...interface{})  {}
func (noop) Warnw(string, ...interface{})  {}
func (noop) Errorw(string, ...interface{}) {}
func (n noop) With(...interface{}) Logger  { return n }

// Nop returns a Logger that discards everything.
func Nop() Logger { return noop{} }

// OrDefault returns l if non-nil, otherwise a discarding logger — this
// library never forces a caller who doesn't care about logging to wire one
// up, but the zero value is never a live production logger firing to
// stderr.
func OrDefault(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
