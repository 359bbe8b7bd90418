// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/mta/internal/platform/constants"
	"github.com/taibuivan/mta/internal/platform/migration"
	"github.com/taibuivan/mta/internal/platform/postgres"
)

// PostgresEnv names the DSN of a disposable database used by the PostgreSQL
// store tests. Those tests are skipped when it is unset.
const PostgresEnv = "MTA_TEST_DATABASE_URL"

// testLockKey serializes test packages sharing the database.
const testLockKey = 7_302_026

// TestPool migrates the database named by [PostgresEnv], empties every table
// and returns a pool to it. The database stays locked to the calling test
// until it finishes.
func TestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(PostgresEnv)
	if dsn == "" {
		t.Skipf("%s not set", PostgresEnv)
	}

	if err := migration.RunUp(constants.DriverPostgres, dsn, Logger()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	lock, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { lock.Close(context.Background()) })
	if _, err := lock.Exec(ctx, `SELECT pg_advisory_lock($1)`, testLockKey); err != nil {
		t.Fatalf("lock: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, Logger())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, `TRUNCATE frequency, volume, manga, term, stats RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

// SeedMangaPool inserts a manga with a fresh stats row and returns the manga id.
func SeedMangaPool(t *testing.T, pool *pgxpool.Pool, title string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		WITH s AS (INSERT INTO stats DEFAULT VALUES RETURNING id)
		INSERT INTO manga (title, statsid) SELECT $1, id FROM s RETURNING id
	`, title).Scan(&id)
	if err != nil {
		t.Fatalf("seed manga: %v", err)
	}
	return id
}

// SeedVolumePool inserts volume number n of mangaID and returns the volume id.
func SeedVolumePool(t *testing.T, pool *pgxpool.Pool, mangaID int64, n int) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		WITH s AS (INSERT INTO stats DEFAULT VALUES RETURNING id)
		INSERT INTO volume (mangaid, volume, statsid) SELECT $1, $2, id FROM s RETURNING id
	`, mangaID, n).Scan(&id)
	if err != nil {
		t.Fatalf("seed volume: %v", err)
	}
	return id
}

// SeedTermsPool inserts each term with a zero total when it does not exist yet.
func SeedTermsPool(t *testing.T, pool *pgxpool.Pool, terms ...string) {
	t.Helper()
	for _, text := range terms {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO term (term, totalcount) VALUES ($1, 0) ON CONFLICT (term) DO NOTHING`, text)
		if err != nil {
			t.Fatalf("seed term %q: %v", text, err)
		}
	}
}
