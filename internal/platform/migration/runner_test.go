// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/mta", "pgx5://u:p@db:5432/mta"},
		{"postgresql://u:p@db:5432/mta", "pgx5://u:p@db:5432/mta"},
		{"pgx5://u:p@db:5432/mta", "pgx5://u:p@db:5432/mta"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}

func TestTarget_UnsupportedDriver(t *testing.T) {
	_, _, err := target("mysql", "x")
	require.Error(t, err)
}

/*
TestRunUp_SQLite applies the embedded schema to a fresh file and is idempotent.
*/
func TestRunUp_SQLite(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "corpus.db")

	require.NoError(t, RunUp("sqlite", path, logger))
	require.NoError(t, RunUp("sqlite", path, logger))

	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"stats", "manga", "volume", "term", "frequency"} {
		var count int
		err := conn.QueryRow(`SELECT count(*) FROM ` + table).Scan(&count)
		assert.NoError(t, err, "table %s missing", table)
	}
}
