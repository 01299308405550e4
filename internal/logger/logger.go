package logger

import (
	"log"
	"os"
)

// Logger is the logging contract used across the service layer.
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// StdLogger implements Logger on top of the standard library log package,
// writing info/warn to stdout and errors to stderr.
type StdLogger struct {
	out *log.Logger
	err *log.Logger
}

// New creates a logger with the default prefixes and flags.
func New() Logger {
	return &StdLogger{
		out: log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err: log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info logs an informational message
func (l *StdLogger) Info(msg string, fields ...interface{}) {
	l.print(l.out, "INFO", msg, fields)
}

// Warn logs a warning message
func (l *StdLogger) Warn(msg string, fields ...interface{}) {
	l.print(l.out, "WARN", msg, fields)
}

// Error logs an error with its cause
func (l *StdLogger) Error(msg string, err error, fields ...interface{}) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	l.print(l.err, "ERROR", msg, fields)
}

// Fatal logs an error and exits the process
func (l *StdLogger) Fatal(msg string, err error, fields ...interface{}) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	l.print(l.err, "FATAL", msg, fields)
	os.Exit(1)
}

func (l *StdLogger) print(dst *log.Logger, level, msg string, fields []interface{}) {
	if len(fields) > 0 {
		dst.Printf("%s: %s %v", level, msg, fields)
		return
	}
	dst.Printf("%s: %s", level, msg)
}
