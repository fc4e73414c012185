// Package logger is the leveled console logger shared by every package.
// Each package keeps its own prefixed instance: var log = logger.New("server").
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level represents log level
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

var (
	mu      sync.RWMutex
	level             = LevelInfo
	colored           = true
	output  io.Writer = os.Stderr
	now               = time.Now
)

var levelStyles = [...]lipgloss.Style{
	LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("#7C8DA6")), // slate
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#8FB3D9")), // pale blue
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6CC4A1")), // mint
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F2C14E")), // amber
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5534B")), // red
}

var styleFaint = lipgloss.NewStyle().Faint(true)

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	prefix string
}

// New creates a new logger with the given prefix
func New(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// ParseLevel converts a string to a Level, returning an error if unrecognized.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (valid: trace, debug, info, warn, error)", s)
}

// SetGlobalLevel sets the minimum level written by every logger.
func SetGlobalLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetGlobalLevelFromString sets the level from a config or flag value.
// Unknown values leave the level unchanged.
func SetGlobalLevelFromString(s string) {
	if l, err := ParseLevel(s); err == nil {
		SetGlobalLevel(l)
	}
}

// SetColored enables or disables colored level labels.
func SetColored(c bool) {
	mu.Lock()
	defer mu.Unlock()
	colored = c
}

// DetectColorProfile re-reads the color profile from the environment for
// output on stderr. Call it after TERM was restored by earlyinit.
func DetectColorProfile() {
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stderr).EnvColorProfile())
}

// SetOutput redirects all loggers to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

func (l *Logger) log(lv Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if lv < level {
		return
	}

	ts := now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	label := "[" + lv.String() + "]"

	if colored {
		fmt.Fprintf(output, "%s %s %s %s\n",
			styleFaint.Render(ts), levelStyles[lv].Render(label), styleFaint.Render("["+l.prefix+"]"), msg)
		return
	}
	fmt.Fprintf(output, "%s %s [%s] %s\n", ts, label, l.prefix, msg)
}

// Trace logs a trace message (most verbose)
func (l *Logger) Trace(format string, args ...any) { l.log(LevelTrace, format, args...) }

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs an info message
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
