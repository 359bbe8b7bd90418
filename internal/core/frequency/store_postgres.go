// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import (
	"context"
	"fmt"
	"maps"
	"slices"

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

func (repository *PostgresRepository) Counts(context context.Context, owner Owner, terms []string) (map[string]int64, error) {
	column, err := owner.column()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 AND %s = ANY($2)`,
		schema.Frequency.Term, schema.Frequency.Count, schema.Frequency.Table,
		column, schema.Frequency.Term,
	)

	rows, err := repository.pool.Query(context, query, owner.ID, terms)
	if err != nil {
		return nil, dberr.Wrap(err, "select_frequency_counts")
	}
	defer rows.Close()

	counts := make(map[string]int64, len(terms))
	for rows.Next() {
		var text string
		var count int64
		if err := rows.Scan(&text, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_frequency_count")
		}
		counts[text] = count
	}

	return counts, dberr.Wrap(rows.Err(), "select_frequency_counts")
}

/*
UpsertMangaCounts writes every manga-scope count in one pipelined batch.

Description: Conflicts on (term, mangaid) replace the stored count with the
merged value computed by the caller.
*/
func (repository *PostgresRepository) UpsertMangaCounts(context context.Context, mangaID int64, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.Frequency.Table, schema.Frequency.Term, schema.Frequency.MangaID, schema.Frequency.Count,
		schema.Frequency.Term, schema.Frequency.MangaID, schema.Frequency.Count, schema.Frequency.Count,
	)

	terms := slices.Sorted(maps.Keys(counts))

	batch := &pgx.Batch{}
	for _, text := range terms {
		batch.Queue(query, text, mangaID, counts[text])
	}

	result := repository.pool.SendBatch(context, batch)
	defer result.Close()

	for _, text := range terms {
		if _, err := result.Exec(); err != nil {
			return dberr.Wrap(fmt.Errorf("term %q: %w", text, err), "upsert_manga_frequency")
		}
	}

	return nil
}

// InsertVolumeCounts bulk-loads the volume's counts with COPY.
func (repository *PostgresRepository) InsertVolumeCounts(context context.Context, volumeID int64, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(counts))
	for _, text := range slices.Sorted(maps.Keys(counts)) {
		rows = append(rows, []any{text, volumeID, counts[text]})
	}

	_, err := repository.pool.CopyFrom(context,
		pgx.Identifier{schema.Frequency.Table},
		[]string{schema.Frequency.Term, schema.Frequency.VolumeID, schema.Frequency.Count},
		pgx.CopyFromRows(rows),
	)
	return dberr.Wrap(err, "insert_volume_frequency")
}

func (repository *PostgresRepository) List(context context.Context, owner Owner) ([]Frequency, error) {
	column, err := owner.column()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s ASC`,
		schema.Frequency.Term, schema.Frequency.Count, schema.Frequency.Table,
		column, schema.Frequency.Count, schema.Frequency.Term,
	)

	rows, err := repository.pool.Query(context, query, owner.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_frequency")
	}
	defer rows.Close()

	var out []Frequency
	for rows.Next() {
		f := Frequency{Owner: owner}
		if err := rows.Scan(&f.Term, &f.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_frequency")
		}
		out = append(out, f)
	}

	return out, dberr.Wrap(rows.Err(), "list_frequency")
}
