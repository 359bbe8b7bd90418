// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/mta/internal/platform/database/schema"
	"github.com/taibuivan/mta/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// # Manga

func (repository *SQLiteRepository) FindMangaByTitle(context context.Context, title string) (*Manga, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		strings.Join(schema.Manga.Columns(), ", "), schema.Manga.Table, schema.Manga.Title,
	)

	m := &Manga{}
	err := repository.db.QueryRowContext(context, query, title).Scan(
		&m.ID, &m.Title, &m.Author, &m.Year, &m.StatsID, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_manga")
	}
	return m, nil
}

func (repository *SQLiteRepository) CreateManga(context context.Context, m *Manga) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)`,
		schema.Manga.Table, schema.Manga.Title, schema.Manga.Author, schema.Manga.Year,
		schema.Manga.StatsID, schema.Manga.CreatedAt,
	)

	createdAt := time.Now().UTC()
	res, err := repository.db.ExecContext(context, query, m.Title, m.Author, m.Year, m.StatsID, createdAt)
	if err != nil {
		return dberr.Wrap(err, "create_manga")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return dberr.Wrap(err, "create_manga")
	}

	m.ID = id
	m.CreatedAt = createdAt
	return nil
}

// # Volume

func (repository *SQLiteRepository) FindVolume(context context.Context, mangaID int64, number int) (*Volume, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		strings.Join(schema.Volume.Columns(), ", "), schema.Volume.Table,
		schema.Volume.MangaID, schema.Volume.Volume,
	)

	v := &Volume{}
	err := repository.db.QueryRowContext(context, query, mangaID, number).Scan(
		&v.ID, &v.MangaID, &v.Number, &v.StatsID, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_volume")
	}
	return v, nil
}

func (repository *SQLiteRepository) CreateVolume(context context.Context, v *Volume) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)`,
		schema.Volume.Table, schema.Volume.MangaID, schema.Volume.Volume,
		schema.Volume.StatsID, schema.Volume.CreatedAt,
	)

	createdAt := time.Now().UTC()
	res, err := repository.db.ExecContext(context, query, v.MangaID, v.Number, v.StatsID, createdAt)
	if err != nil {
		return dberr.Wrap(err, "create_volume")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return dberr.Wrap(err, "create_volume")
	}

	v.ID = id
	v.CreatedAt = createdAt
	return nil
}
