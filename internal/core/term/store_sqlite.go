// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/taibuivan/mta/internal/platform/database/schema"
	"github.com/taibuivan/mta/internal/platform/dberr"
	"github.com/taibuivan/mta/internal/platform/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) Totals(context context.Context, terms []string) (map[string]int64, error) {
	totals := make(map[string]int64, len(terms))

	for _, chunk := range sqlite.Chunks(terms, sqlite.MaxVars) {
		query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s IN (%s)`,
			schema.Term.Term, schema.Term.TotalCount, schema.Term.Table, schema.Term.Term,
			sqlite.Placeholders(len(chunk)),
		)

		args := make([]any, len(chunk))
		for i, text := range chunk {
			args[i] = text
		}

		if err := repository.scanTotals(context, query, args, totals); err != nil {
			return nil, err
		}
	}

	return totals, nil
}

func (repository *SQLiteRepository) scanTotals(context context.Context, query string, args []any, into map[string]int64) error {
	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "select_term_totals")
	}
	defer rows.Close()

	for rows.Next() {
		var text string
		var total int64
		if err := rows.Scan(&text, &total); err != nil {
			return dberr.Wrap(err, "scan_term_total")
		}
		into[text] = total
	}
	return dberr.Wrap(rows.Err(), "select_term_totals")
}

// UpsertTotals writes every total inside one transaction.
func (repository *SQLiteRepository) UpsertTotals(context context.Context, totals map[string]int64) error {
	if len(totals) == 0 {
		return nil
	}

	tx, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return dberr.Wrap(err, "begin_upsert_term_totals")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(context, fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES (?, ?)
		ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s
	`,
		schema.Term.Table, schema.Term.Term, schema.Term.TotalCount,
		schema.Term.Term, schema.Term.TotalCount, schema.Term.TotalCount,
	))
	if err != nil {
		return dberr.Wrap(err, "prepare_upsert_term_totals")
	}
	defer stmt.Close()

	for _, text := range slices.Sorted(maps.Keys(totals)) {
		if _, err := stmt.ExecContext(context, text, totals[text]); err != nil {
			return dberr.Wrap(fmt.Errorf("term %q: %w", text, err), "upsert_term_totals")
		}
	}

	return dberr.Wrap(tx.Commit(), "commit_upsert_term_totals")
}

func (repository *SQLiteRepository) GetTerm(context context.Context, text string) (*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		strings.Join(schema.Term.Columns(), ", "), schema.Term.Table, schema.Term.Term,
	)

	t := &Term{}
	err := repository.db.QueryRowContext(context, query, text).Scan(&t.Text, &t.TotalCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_term")
	}

	return t, nil
}
