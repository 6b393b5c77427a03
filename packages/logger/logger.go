// Package logger wraps zerolog for hitpie's diagnostic output.
//
// Diagnostics always go to stderr so they never mix with the rendered
// response on stdout. The Logger also satisfies resty's Logger interface,
// which lets the HTTP client report through the same sink.
package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a console logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func New(w io.Writer, verbose bool, noColor bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05.000",
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{l}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Errorf implements resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Msg(trim(fmt.Sprintf(format, v...)))
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Msg(trim(fmt.Sprintf(format, v...)))
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Msg(trim(fmt.Sprintf(format, v...)))
}

func trim(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// WithContext attaches l to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx by WithContext. When none
// was attached, the returned logger is disabled.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
