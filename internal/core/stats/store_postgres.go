// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/mta/internal/platform/database/schema"
	"github.com/taibuivan/mta/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING %s`, schema.Stats.Table, schema.Stats.ID)

	var id int64
	if err := repository.pool.QueryRow(context, query).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "create_stats")
	}
	return id, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Stats.Table, schema.Stats.ID)

	_, err := repository.pool.Exec(context, query, id)
	return dberr.Wrap(err, "delete_stats")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Stats, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Stats.Columns(), ", "), schema.Stats.Table, schema.Stats.ID,
	)

	s := &Stats{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&s.ID, &s.UniqueWords, &s.TotalWords, &s.WordsUsedOnce, &s.WordsUsedOncePct, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_stats")
	}
	return s, nil
}

func (repository *PostgresRepository) Update(context context.Context, s *Stats) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $6
	`,
		schema.Stats.Table,
		schema.Stats.UniqueWords, schema.Stats.TotalWords, schema.Stats.WordsUsedOnce,
		schema.Stats.WordsUsedOncePct, schema.Stats.UpdatedAt,
		schema.Stats.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		s.UniqueWords, s.TotalWords, s.WordsUsedOnce, s.WordsUsedOncePct, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_stats")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
