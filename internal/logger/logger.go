package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component.
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type Options struct {
	Level string
	JSON  bool
}

// New builds the shell logger. Console output is used when stdout is a
// terminal and JSON was not requested.
func New(opts Options) (*ZerologAdapter, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.JSON || !isatty.IsTerminal(os.Stdout.Fd()) {
		return NewZerolog(os.Stdout, level), nil
	}
	return NewConsoleLogger(level), nil
}

// ParseLevel maps config level names onto zerolog levels. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
