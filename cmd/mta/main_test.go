// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/testutil"
)

/*
TestFail_LogsOnceWithExitCode verifies a failed command produces a single
error line and the error's exit code.
*/
func TestFail_LogsOnceWithExitCode(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logger, buf := testutil.CaptureLogger()
	slog.SetDefault(logger)

	code := fail(apperr.Conflict("volume already exists"))

	assert.Equal(t, apperr.ExitConflict, code)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"command_failed"`)
	assert.Contains(t, lines[0], "volume already exists")
}
