// Package logger provides structured logging for Streambase.
// Output format is controlled by the LOG_FORMAT environment variable
// ("json" for machine-readable logs, anything else for human-readable),
// and debug output is gated on LOG_LEVEL=debug.
package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// Info logs informational messages
func Info(msg string, fields ...Field) {
	logStructured("INFO", msg, fields...)
}

// Warn logs warning messages
func Warn(msg string, fields ...Field) {
	logStructured("WARN", msg, fields...)
}

// Error logs error messages
func Error(msg string, fields ...Field) {
	logStructured("ERROR", msg, fields...)
}

// Debug logs debug messages when LOG_LEVEL=debug
func Debug(msg string, fields ...Field) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		logStructured("DEBUG", msg, fields...)
	}
}

// Infof logs a printf-style informational message
func Infof(format string, args ...interface{}) {
	log.Printf("INFO: "+format, args...)
}

// Warnf logs a printf-style warning message
func Warnf(format string, args ...interface{}) {
	log.Printf("WARN: "+format, args...)
}

// Errorf logs a printf-style error message
func Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}

func logStructured(level, msg string, fields ...Field) {
	if os.Getenv("LOG_FORMAT") == "json" {
		logEntry := map[string]interface{}{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"level":     level,
			"message":   msg,
		}
		for _, field := range fields {
			logEntry[field.Key] = field.Value
		}
		jsonData, _ := json.Marshal(logEntry)
		log.Println(string(jsonData))
		return
	}

	fieldStr := ""
	for i, field := range fields {
		if i == 0 {
			fieldStr = " "
		} else {
			fieldStr += " "
		}
		fieldStr += fmt.Sprintf("%s=%v", field.Key, field.Value)
	}
	log.Printf("%s: %s%s", level, msg, fieldStr)
}

// Helper functions for common field types

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Err(key string, err error) Field {
	if err == nil {
		return Field{Key: key, Value: nil}
	}
	return Field{Key: key, Value: err.Error()}
}
