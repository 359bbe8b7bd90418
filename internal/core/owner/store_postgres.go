// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

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

// # Manga

func (repository *PostgresRepository) FindMangaByTitle(context context.Context, title string) (*Manga, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Manga.Columns(), ", "), schema.Manga.Table, schema.Manga.Title,
	)

	m := &Manga{}
	err := repository.pool.QueryRow(context, query, title).Scan(
		&m.ID, &m.Title, &m.Author, &m.Year, &m.StatsID, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_manga")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateManga(context context.Context, m *Manga) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.Manga.Table, schema.Manga.Title, schema.Manga.Author, schema.Manga.Year, schema.Manga.StatsID,
		schema.Manga.ID, schema.Manga.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query, m.Title, m.Author, m.Year, m.StatsID).Scan(&m.ID, &m.CreatedAt)
	return dberr.Wrap(err, "create_manga")
}

// # Volume

func (repository *PostgresRepository) FindVolume(context context.Context, mangaID int64, number int) (*Volume, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(schema.Volume.Columns(), ", "), schema.Volume.Table,
		schema.Volume.MangaID, schema.Volume.Volume,
	)

	v := &Volume{}
	err := repository.pool.QueryRow(context, query, mangaID, number).Scan(
		&v.ID, &v.MangaID, &v.Number, &v.StatsID, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_volume")
	}
	return v, nil
}

func (repository *PostgresRepository) CreateVolume(context context.Context, v *Volume) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.Volume.Table, schema.Volume.MangaID, schema.Volume.Volume, schema.Volume.StatsID,
		schema.Volume.ID, schema.Volume.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query, v.MangaID, v.Number, v.StatsID).Scan(&v.ID, &v.CreatedAt)
	return dberr.Wrap(err, "create_volume")
}
