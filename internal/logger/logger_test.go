/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"bennypowers.dev/tokenwind/internal/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(io.Discard)

	logger.Warn("token %s dropped", "color-x")
	logger.Info("wrote %d files", 2)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "warning:") || !strings.Contains(out, "token color-x dropped") {
		t.Errorf("expected warning line, got %q", out)
	}
	if !strings.Contains(out, "wrote 2 files") {
		t.Errorf("expected info line, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output must be off by default, got %q", out)
	}
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(io.Discard)
	}()

	logger.Debug("visible %d", 1)
	if !strings.Contains(buf.String(), "visible 1") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}
