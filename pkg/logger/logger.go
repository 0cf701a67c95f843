// Package logger wires zap behind a logr.Logger facade. The TUI owns the
// terminal, so all log output goes to stderr as JSON and is expected to be
// redirected when debugging interactively.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/rosterview/pkg/settings"
)

// loggerContextKey is unexported to prevent key collisions in context values.
type loggerContextKey struct{}

const (
	RootCommandKey = "root_command"
	SubCommandKey  = "sub_command"

	CommitKey    = "commit"
	VersionKey   = "version"
	BuildTimeKey = "build_time"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once

	// globalZapLogger backs Sync(); package-private so callers cannot swap it.
	globalZapLogger *zap.Logger

	// globalLogrLogger is what application code uses, directly or via context.
	globalLogrLogger *logr.Logger

	defaultNoopLogger = logr.Discard()
)

// Get initializes the global logger at the given minimum level and returns
// it. Initialization happens once; later calls return the same logger
// regardless of the level argument.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = TimeStampKey
		encoderCfg.MessageKey = MessageKey

		buildInfo, _ := debug.ReadBuildInfo()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
		).With(
			[]zapcore.Field{
				zap.String(CommitKey, settings.VersionInformation.Commit),
				zap.String(VersionKey, settings.VersionInformation.BuildVersion),
				zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
				zap.String(GoVersionKey, buildInfo.GoVersion),
			},
		)

		globalZapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
			zap.WithFatalHook(zapcore.WriteThenPanic),
		)

		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logger from the context, falling back to the
// global logger and finally to a no-op logger if Get was never called.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes buffered log entries. Call before exit, typically deferred
// from main.
func Sync() {
	if globalZapLogger != nil {
		if err := globalZapLogger.Sync(); err != nil {
			if isIgnorableSyncError(err) {
				return
			}
			fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
		}
	}
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
// Windows consoles can return ERROR_INVALID_HANDLE wrapped in *os.PathError,
// which does not compare equal to syscall.EINVAL, so we also string-match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	if strings.Contains(err.Error(), "The handle is invalid") {
		return true
	}
	return false
}

// GetGlobalLogger returns the globally configured logger, or a no-op
// logger if Get has not been called.
func GetGlobalLogger() *logr.Logger {
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &defaultNoopLogger
}

// WithValues returns a logger with additional key-value pairs attached.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	nlgr := lgr.WithValues(keysAndValues...)
	return &nlgr
}
