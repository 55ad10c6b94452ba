/*
MIT License

Copyright (c) 2025 Yuval Adar <adary@adary.org>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger = zerolog.Nop()

// InitLogger sets up file logging with rotation. When console is true a
// human-readable copy also goes to stderr; stdout is never written because
// the TUI owns it.
func InitLogger(logFile string, level string, maxAge, maxSize, maxBackups int, console bool) error {
	// Expand ~ to home directory if present
	if strings.HasPrefix(logFile, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logFile = filepath.Join(homeDir, logFile[2:])
	}

	// Ensure log directory exists
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel // Default to info if invalid level
	}

	var writer io.Writer = &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSize,    // MB
		MaxAge:     maxAge,     // days
		MaxBackups: maxBackups, // number of backups
		LocalTime:  true,
		Compress:   true,
	}

	if console {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02 15:04:05",
		}
		writer = io.MultiWriter(writer, consoleWriter)
	}

	globalLogger = zerolog.New(writer).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	// Also set the global zerolog logger
	log.Logger = globalLogger

	return nil
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	globalLogger.Debug().Msgf(format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	globalLogger.Info().Msgf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	globalLogger.Warn().Msgf(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	globalLogger.Error().Msgf(format, args...)
}

// GetLogger returns the configured logger instance
func GetLogger() zerolog.Logger {
	return globalLogger
}
