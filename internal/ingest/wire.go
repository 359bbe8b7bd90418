// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/mta/internal/core/frequency"
	"github.com/taibuivan/mta/internal/core/owner"
	"github.com/taibuivan/mta/internal/core/stats"
	"github.com/taibuivan/mta/internal/core/term"
)

// # Dependency Wiring

// NewPostgres wires every core service to the PostgreSQL store.
func NewPostgres(pool *pgxpool.Pool, logger *slog.Logger) *Service {
	frequencies := frequency.NewService(frequency.NewPostgresRepository(pool), logger)
	statsService := stats.NewService(stats.NewPostgresRepository(pool), frequencies, logger)

	return NewService(
		term.NewService(term.NewPostgresRepository(pool), logger),
		owner.NewService(owner.NewPostgresRepository(pool), statsService, logger),
		frequencies,
		statsService,
		logger,
	)
}

// NewSQLite wires every core service to a local SQLite corpus.
func NewSQLite(db *sql.DB, logger *slog.Logger) *Service {
	frequencies := frequency.NewService(frequency.NewSQLiteRepository(db), logger)
	statsService := stats.NewService(stats.NewSQLiteRepository(db), frequencies, logger)

	return NewService(
		term.NewService(term.NewSQLiteRepository(db), logger),
		owner.NewService(owner.NewSQLiteRepository(db), statsService, logger),
		frequencies,
		statsService,
		logger,
	)
}
