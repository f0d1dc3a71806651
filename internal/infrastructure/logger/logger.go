package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// AppLogger adapts a zerolog.Logger to the printf style IAppLogger.
type AppLogger struct {
	log zerolog.Logger
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

// NewAppLogger builds a logger writing to stdout. format is "json" or "console".
func NewAppLogger(level, format string) *AppLogger {
	return newAppLogger(os.Stdout, level, format)
}

func newAppLogger(out io.Writer, level, format string) *AppLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &AppLogger{log: l}
}

// NewNopLogger discards everything. Used in tests and by the CLI's quiet mode.
func NewNopLogger() *AppLogger {
	return &AppLogger{log: zerolog.Nop()}
}

// Zerolog exposes the underlying logger for middleware that logs structured fields.
func (l *AppLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

// With returns a child logger tagged with a component name.
func (l *AppLogger) With(component string) *AppLogger {
	return &AppLogger{log: l.log.With().Str("component", component).Logger()}
}

func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

// Warningf is an alias of Warnf.
func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatalf logs and exits the process.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msg(fmt.Sprintf(format, args...))
}
