package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const logDir = "logs"

// logChannel is a lazily built JSON logger with its own adjustable level.
type logChannel struct {
	once    sync.Once
	level   slog.LevelVar
	initial slog.Level
	attrs   []slog.Attr
	logger  *slog.Logger
}

func (c *logChannel) get() *slog.Logger {
	c.once.Do(func() {
		c.level.Set(c.initial)
		var handler slog.Handler = slog.NewJSONHandler(sink(), &slog.HandlerOptions{Level: &c.level})
		if len(c.attrs) > 0 {
			handler = handler.WithAttrs(c.attrs)
		}
		c.logger = slog.New(handler)
	})
	return c.logger
}

func (c *logChannel) set(level slog.Level) {
	c.get()
	c.level.Set(level)
}

var (
	logFilename string
	logFile     *os.File
	sinkOnce    sync.Once
)

var output io.Writer = os.Stdout

var appChannel = &logChannel{initial: slog.LevelInfo}

var widgetChannel = &logChannel{
	initial: slog.LevelError,
	attrs:   []slog.Attr{slog.String("component", "sidemenu")},
}

// SetLogFilename makes both loggers also append to logs/<filename>.
// Must be called before the first logger is requested.
func SetLogFilename(filename string) {
	logFilename = filename
}

// sink opens the log file on first use. A file that cannot be opened leaves
// logging on stdout.
func sink() io.Writer {
	sinkOnce.Do(func() {
		if logFilename == "" {
			return
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			slog.Error("Failed to create logs directory, logging to stdout only", "error", err)
			return
		}
		f, err := os.OpenFile(filepath.Join(logDir, logFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			slog.Error("Failed to open log file, logging to stdout only", "error", err)
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, f)
	})
	return output
}

// GetLogger is the application logger.
func GetLogger() *slog.Logger { return appChannel.get() }

// GetInternalLogger is the logger used by the widgets themselves. It stays at Error
// unless SIDEMENU_DEV is set or the level is raised explicitly.
func GetInternalLogger() *slog.Logger { return widgetChannel.get() }

func SetLogLevel(level slog.Level) { appChannel.set(level) }

func SetInternalLogLevel(level slog.Level) { widgetChannel.set(level) }

// ParseLogLevel maps a config string to a level, defaulting to Info.
func ParseLogLevel(raw string) slog.Level {
	levels := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	if level, ok := levels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level
	}
	return slog.LevelInfo
}

func SetRawLogLevel(raw string) { SetLogLevel(ParseLogLevel(raw)) }

func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
