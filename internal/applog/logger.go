// Package applog is a minimal leveled logger matching the call surface
// the teacher's cmd/gt entrypoint already used (GetLogger, SetLevel,
// Debug/Info/Warn/Fatal with printf-style formatting), backed by the
// standard library's log.Logger.
package applog

import (
	"log"
	"os"
	"sync"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	FatalLevel
)

// Logger filters printf-style messages by Level before writing them
// through a standard library *log.Logger.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
}

var (
	once     sync.Once
	instance *Logger
)

// GetLogger returns the process-wide Logger, creating it on first use
// with InfoLevel and output to stderr.
func GetLogger() *Logger {
	once.Do(func() {
		instance = &Logger{
			level: InfoLevel,
			out:   log.New(os.Stderr, "", log.LstdFlags),
		}
	})
	return instance
}

// SetLevel changes the minimum severity that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) log(level Level, prefix, format string, args ...any) {
	l.mu.Lock()
	threshold := l.level
	l.mu.Unlock()
	if level < threshold {
		return
	}
	l.out.Printf(prefix+format, args...)
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(format string, args ...any) { l.log(DebugLevel, "[DEBUG] ", format, args...) }

// Info logs at InfoLevel.
func (l *Logger) Info(format string, args ...any) { l.log(InfoLevel, "[INFO] ", format, args...) }

// Warn logs at WarnLevel.
func (l *Logger) Warn(format string, args ...any) { l.log(WarnLevel, "[WARN] ", format, args...) }

// Fatal logs at FatalLevel and terminates the process.
func (l *Logger) Fatal(format string, args ...any) {
	l.log(FatalLevel, "[FATAL] ", format, args...)
	os.Exit(1)
}
