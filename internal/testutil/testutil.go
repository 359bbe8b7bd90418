// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil provides shared test helpers for setting up corpus stores.
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/taibuivan/mta/internal/platform/constants"
	"github.com/taibuivan/mta/internal/platform/migration"
	"github.com/taibuivan/mta/internal/platform/sqlite"
)

// Logger returns a logger that discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// CaptureLogger returns a JSON logger writing every level into the returned buffer.
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// TestDB creates a migrated temporary SQLite corpus that is automatically cleaned up.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.db")

	if err := migration.RunUp(constants.DriverSQLite, path, Logger()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sqlite.Open(context.Background(), path, Logger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Count returns SELECT count(*) for the given table.
func Count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT count(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// SeedManga inserts a manga with a fresh stats row and returns the manga id.
func SeedManga(t *testing.T, db *sql.DB, title string) int64 {
	t.Helper()
	statsID := seedStats(t, db)
	res, err := db.Exec(`INSERT INTO manga (title, statsid) VALUES (?, ?)`, title, statsID)
	if err != nil {
		t.Fatalf("seed manga: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// SeedVolume inserts volume number n of mangaID and returns the volume id.
func SeedVolume(t *testing.T, db *sql.DB, mangaID int64, n int) int64 {
	t.Helper()
	statsID := seedStats(t, db)
	res, err := db.Exec(`INSERT INTO volume (mangaid, volume, statsid) VALUES (?, ?, ?)`, mangaID, n, statsID)
	if err != nil {
		t.Fatalf("seed volume: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// SeedTerms inserts each term with a zero total when it does not exist yet.
func SeedTerms(t *testing.T, db *sql.DB, terms ...string) {
	t.Helper()
	for _, text := range terms {
		if _, err := db.Exec(`INSERT OR IGNORE INTO term (term, totalcount) VALUES (?, 0)`, text); err != nil {
			t.Fatalf("seed term %q: %v", text, err)
		}
	}
}

func seedStats(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO stats DEFAULT VALUES`)
	if err != nil {
		t.Fatalf("seed stats: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}
