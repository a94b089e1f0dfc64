/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide logger. It writes human-readable
// lines to stderr and can be silenced or redirected for tests.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	output  io.Writer = os.Stderr
	level             = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugared *zap.SugaredLogger
)

func init() {
	sugared = build(output)
}

func build(w io.Writer) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      encodeLevel,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeDuration:   zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Sugar()
}

// encodeLevel prints "warning:" for warnings and nothing for info,
// so regular progress output reads like plain CLI output.
func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.WarnLevel:
		enc.AppendString("warning:")
	case zapcore.ErrorLevel:
		enc.AppendString("error:")
	case zapcore.DebugLevel:
		enc.AppendString("debug:")
	}
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	sugared = build(output)
}

// SetVerbose enables or disables debug output.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugared
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug logs a debug message. Only printed in verbose mode.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}
