// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/mta/internal/platform/database/schema"
	"github.com/taibuivan/mta/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) Create(context context.Context) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES`, schema.Stats.Table)

	res, err := repository.db.ExecContext(context, query)
	if err != nil {
		return 0, dberr.Wrap(err, "create_stats")
	}
	id, err := res.LastInsertId()
	return id, dberr.Wrap(err, "create_stats")
}

func (repository *SQLiteRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Stats.Table, schema.Stats.ID)

	_, err := repository.db.ExecContext(context, query, id)
	return dberr.Wrap(err, "delete_stats")
}

func (repository *SQLiteRepository) Get(context context.Context, id int64) (*Stats, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		strings.Join(schema.Stats.Columns(), ", "), schema.Stats.Table, schema.Stats.ID,
	)

	s := &Stats{}
	err := repository.db.QueryRowContext(context, query, id).Scan(
		&s.ID, &s.UniqueWords, &s.TotalWords, &s.WordsUsedOnce, &s.WordsUsedOncePct, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_stats")
	}
	return s, nil
}

func (repository *SQLiteRepository) Update(context context.Context, s *Stats) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = ?, %s = ?, %s = ?, %s = ?, %s = ?
		WHERE %s = ?
	`,
		schema.Stats.Table,
		schema.Stats.UniqueWords, schema.Stats.TotalWords, schema.Stats.WordsUsedOnce,
		schema.Stats.WordsUsedOncePct, schema.Stats.UpdatedAt,
		schema.Stats.ID,
	)

	res, err := repository.db.ExecContext(context, query,
		s.UniqueWords, s.TotalWords, s.WordsUsedOnce, s.WordsUsedOncePct, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_stats")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, "update_stats")
	}
	if affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
