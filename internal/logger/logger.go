// Package logger keeps log lines in memory, appends them to a file on disk and
// echoes them to the console in a colour matching their level.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var levelStyles = [...]color.Style{
	{color.FgGray},
	{color.FgGreen},
	{color.FgYellow, color.OpBold},
	{color.FgRed, color.OpBold},
}

func (lv Level) String() string {
	if lv < LevelDebug || lv > LevelError {
		return fmt.Sprintf("Level(%d)", int(lv))
	}
	return levelNames[lv]
}

// ParseLevel accepts the level names case-insensitively. An empty string is LevelInfo.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelInfo, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// MaxLines is how many recent lines a Logger keeps in memory.
const MaxLines = 256

type Logger struct {
	mu      sync.Mutex
	file    *os.File
	level   Level
	lines   []string
	console io.Writer
}

// New returns a Logger appending to path (skipped when empty) and writing to
// stderr. The directory of path is created if needed. If the file cannot be
// opened the Logger still writes to the console.
func New(path string, level Level) *Logger {
	l := &Logger{
		level:   level,
		lines:   make([]string, 0, MaxLines),
		console: os.Stderr,
	}
	if path == "" {
		return l
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		return l
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		return l
	}
	l.file = f
	return l
}

// Nop returns a Logger that only keeps lines in memory.
func Nop() *Logger {
	return &Logger{level: LevelDebug, lines: make([]string, 0, MaxLines)}
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// log prefixes each entry with [timestamp] LEVEL using computer time.
func (l *Logger) log(lv Level, format string, args ...any) {
	if l == nil || lv < l.level {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := fmt.Sprintf("[%s] %-5s %s", ts, lv, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == MaxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:MaxLines-1]
	}
	l.lines = append(l.lines, stamped)

	if l.console != nil {
		fmt.Fprintln(l.console, levelStyles[lv].Sprint(stamped))
	}
	if l.file != nil {
		_, _ = l.file.WriteString(stamped + "\n")
	}
}

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file. Later lines only reach memory and the console.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
