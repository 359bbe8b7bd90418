// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestChunks(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	chunks := Chunks(items, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
	assert.Empty(t, Chunks([]string{}, 2))
}

func TestOpen_CreatesParentDir(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "nested", "corpus.db")

	db, err := Open(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpen_LogsEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "corpus.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Contains(t, buf.String(), `"msg":"sqlite_store_opened"`)
}
