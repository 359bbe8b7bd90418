// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
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

func (repository *PostgresRepository) Totals(context context.Context, terms []string) (map[string]int64, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.Term.Term, schema.Term.TotalCount, schema.Term.Table, schema.Term.Term,
	)

	rows, err := repository.pool.Query(context, query, terms)
	if err != nil {
		return nil, dberr.Wrap(err, "select_term_totals")
	}
	defer rows.Close()

	totals := make(map[string]int64, len(terms))
	for rows.Next() {
		var text string
		var total int64
		if err := rows.Scan(&text, &total); err != nil {
			return nil, dberr.Wrap(err, "scan_term_total")
		}
		totals[text] = total
	}

	return totals, dberr.Wrap(rows.Err(), "select_term_totals")
}

/*
UpsertTotals writes every total in a single pipelined batch.

Description: The batch runs as one implicit transaction, so either every
term total is written or none is.
*/
func (repository *PostgresRepository) UpsertTotals(context context.Context, totals map[string]int64) error {
	if len(totals) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.Term.Table, schema.Term.Term, schema.Term.TotalCount,
		schema.Term.Term, schema.Term.TotalCount, schema.Term.TotalCount,
	)

	// Sorted order keeps row locks acquired in a stable sequence.
	terms := slices.Sorted(maps.Keys(totals))

	batch := &pgx.Batch{}
	for _, text := range terms {
		batch.Queue(query, text, totals[text])
	}

	result := repository.pool.SendBatch(context, batch)
	defer result.Close()

	for _, text := range terms {
		if _, err := result.Exec(); err != nil {
			return dberr.Wrap(fmt.Errorf("term %q: %w", text, err), "upsert_term_totals")
		}
	}

	return nil
}

func (repository *PostgresRepository) GetTerm(context context.Context, text string) (*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Term.Columns(), ", "), schema.Term.Table, schema.Term.Term,
	)

	t := &Term{}
	err := repository.pool.QueryRow(context, query, text).Scan(&t.Text, &t.TotalCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_term")
	}

	return t, nil
}
