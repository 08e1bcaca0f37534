package trace

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

func init() {
	currentLevel.Store(int32(LevelInfo))
	if s := os.Getenv("PREDVIEW_LOG_LEVEL"); s != "" {
		SetLogLevel(s)
	}
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		currentLevel.Store(int32(l))
	}
}

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return LogLevel(currentLevel.Load()) }

func logf(l LogLevel, prefix, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, "DEBUG", format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, "INFO", format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, "WARN", format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, "ERROR", format, a...) }
