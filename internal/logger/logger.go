package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger writes tagged, colored lines to stdout and plain lines to a log file.
type Logger struct {
	mu    sync.Mutex
	file  *os.File
	debug bool
}

var (
	infoColor     = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
	debugColor    = color.New(color.FgCyan)
	fatalColor    = color.New(color.FgRed, color.Bold)
	processColor  = color.New(color.FgMagenta)
	databaseColor = color.New(color.FgBlue)
	kafkaColor    = color.New(color.FgHiMagenta)
	apiColor      = color.New(color.FgHiGreen)
	securityColor = color.New(color.FgHiRed)
)

func NewLogger() *Logger {
	debug := os.Getenv("LOG_LEVEL") == "debug"

	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}

	var file *os.File
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, "eventify.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			file = f
		}
	}

	return &Logger{file: file, debug: debug}
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) log(c *color.Color, level, tag, msg string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-5s [%s] %s", ts, level, tag, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	c.Fprintln(os.Stdout, line)
	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

func (l *Logger) Info(tag, msg string)  { l.log(infoColor, "INFO", tag, msg) }
func (l *Logger) Warn(tag, msg string)  { l.log(warnColor, "WARN", tag, msg) }
func (l *Logger) Error(tag, msg string) { l.log(errorColor, "ERROR", tag, msg) }

func (l *Logger) Debug(tag, msg string) {
	if l.debug {
		l.log(debugColor, "DEBUG", tag, msg)
	}
}

func (l *Logger) Fatal(tag, msg string) {
	l.log(fatalColor, "FATAL", tag, msg)
	l.Close()
	os.Exit(1)
}

// Domain-tagged helpers keep log lines grep-able per subsystem.

func (l *Logger) LogProcess(tag, msg string) {
	l.log(processColor, "INFO", tag, msg)
}

func (l *Logger) LogDatabase(action, table, msg string) {
	l.log(databaseColor, "INFO", "DATABASE", fmt.Sprintf("%s [%s] %s", action, table, msg))
}

func (l *Logger) LogKafka(action, topic, msg string) {
	l.log(kafkaColor, "INFO", "KAFKA", fmt.Sprintf("%s [%s] %s", action, topic, msg))
}

func (l *Logger) LogAPI(method, path, status, duration string) {
	l.log(apiColor, "INFO", "API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

func (l *Logger) LogAuth(action, subject, msg string) {
	l.log(processColor, "INFO", "AUTH", fmt.Sprintf("%s [%s] %s", action, subject, msg))
}

func (l *Logger) LogOrder(action, orderID, msg string) {
	l.log(processColor, "INFO", "ORDER", fmt.Sprintf("%s [%s] %s", action, orderID, msg))
}

func (l *Logger) LogSecurity(action, msg string) {
	l.log(securityColor, "WARN", "SECURITY", fmt.Sprintf("%s %s", action, msg))
}
