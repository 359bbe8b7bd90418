// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

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

func (repository *SQLiteRepository) Counts(context context.Context, owner Owner, terms []string) (map[string]int64, error) {
	column, err := owner.column()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(terms))

	// One slot is reserved for the owner id.
	for _, chunk := range sqlite.Chunks(terms, sqlite.MaxVars-1) {
		query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ? AND %s IN (%s)`,
			schema.Frequency.Term, schema.Frequency.Count, schema.Frequency.Table,
			column, schema.Frequency.Term, sqlite.Placeholders(len(chunk)),
		)

		args := make([]any, 0, len(chunk)+1)
		args = append(args, owner.ID)
		for _, text := range chunk {
			args = append(args, text)
		}

		if err := repository.scanCounts(context, query, args, counts); err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (repository *SQLiteRepository) scanCounts(context context.Context, query string, args []any, into map[string]int64) error {
	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "select_frequency_counts")
	}
	defer rows.Close()

	for rows.Next() {
		var text string
		var count int64
		if err := rows.Scan(&text, &count); err != nil {
			return dberr.Wrap(err, "scan_frequency_count")
		}
		into[text] = count
	}
	return dberr.Wrap(rows.Err(), "select_frequency_counts")
}

func (repository *SQLiteRepository) UpsertMangaCounts(context context.Context, mangaID int64, counts map[string]int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (?, ?, ?)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = excluded.%s
	`,
		schema.Frequency.Table, schema.Frequency.Term, schema.Frequency.MangaID, schema.Frequency.Count,
		schema.Frequency.Term, schema.Frequency.MangaID, schema.Frequency.Count, schema.Frequency.Count,
	)
	return repository.execAll(context, query, mangaID, counts, "upsert_manga_frequency")
}

func (repository *SQLiteRepository) InsertVolumeCounts(context context.Context, volumeID int64, counts map[string]int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)`,
		schema.Frequency.Table, schema.Frequency.Term, schema.Frequency.VolumeID, schema.Frequency.Count,
	)
	return repository.execAll(context, query, volumeID, counts, "insert_volume_frequency")
}

// execAll runs query once per term inside a single transaction.
func (repository *SQLiteRepository) execAll(context context.Context, query string, ownerID int64, counts map[string]int64, action string) error {
	if len(counts) == 0 {
		return nil
	}

	tx, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return dberr.Wrap(err, "begin_"+action)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(context, query)
	if err != nil {
		return dberr.Wrap(err, "prepare_"+action)
	}
	defer stmt.Close()

	for _, text := range slices.Sorted(maps.Keys(counts)) {
		if _, err := stmt.ExecContext(context, text, ownerID, counts[text]); err != nil {
			return dberr.Wrap(fmt.Errorf("term %q: %w", text, err), action)
		}
	}

	return dberr.Wrap(tx.Commit(), "commit_"+action)
}

func (repository *SQLiteRepository) List(context context.Context, owner Owner) ([]Frequency, error) {
	column, err := owner.column()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ? ORDER BY %s DESC, %s ASC`,
		schema.Frequency.Term, schema.Frequency.Count, schema.Frequency.Table,
		column, schema.Frequency.Count, schema.Frequency.Term,
	)

	rows, err := repository.db.QueryContext(context, query, owner.ID)
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
