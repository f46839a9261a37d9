// Package log is a thin layer over log/slog. Library code takes an optional *Logger; a nil one
// drops debug and info messages, and sends warnings and errors to the default slog logger.
package log

import(
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile  string  // blank when logging to stderr
	Start    time.Time
}

// ParseLevel understands debug, info, warn and error; anything else is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":       return slog.LevelDebug, nil
	case "", "info":    return slog.LevelInfo, nil
	case "warn":        return slog.LevelWarn, nil
	case "error":       return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%q: invalid log level", level)
}

// New logs text to stderr if filename is blank. Otherwise it logs JSON to the file, which is
// rotated once it gets large.
func New(level string, filename string) *Logger {
	lvl,err := ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, using info\n", err)
	}

	if filename == "" {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
		return &Logger{Logger: slog.New(h), Start: time.Now()}
	}

	w := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	l := &Logger{
		Logger:  slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})),
		LogFile: filename,
		Start:   time.Now(),
	}
	l.Info("Hello logging", slog.String("GOOS", runtime.GOOS), slog.String("GOARCH", runtime.GOARCH),
		slog.String("go", runtime.Version()))
	return l
}

// NewWriter logs JSON to w; mostly for tests.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h), Start: time.Now()}
}

func (l *Logger)Debug(msg string, args ...any) {
	if l != nil { l.Logger.Debug(msg, args...) }
}

func (l *Logger)Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger)Info(msg string, args ...any) {
	if l != nil { l.Logger.Info(msg, args...) }
}

func (l *Logger)Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger)Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger)Warnf(msg string, args ...any) { l.Warn(fmt.Sprintf(msg, args...)) }

func (l *Logger)Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger)Errorf(msg string, args ...any) { l.Error(fmt.Sprintf(msg, args...)) }

// With returns nil for a nil Logger.
func (l *Logger)With(args ...any) *Logger {
	if l == nil { return nil }
	return &Logger{Logger: l.Logger.With(args...), LogFile: l.LogFile, Start: l.Start}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
