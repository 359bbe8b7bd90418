// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/core/stats"
	"github.com/taibuivan/mta/internal/testutil"
)

func TestSQLiteRepository_MangaRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(testutil.TestDB(t))
	ctx := context.Background()

	missing, err := repo.FindMangaByTitle(ctx, "Foo")
	require.NoError(t, err)
	assert.Nil(t, missing)

	statsID, err := stats.NewSQLiteRepository(repo.db).Create(ctx)
	require.NoError(t, err)

	m := &Manga{Title: "Foo", Author: "Bar", Year: 2020, StatsID: statsID}
	require.NoError(t, repo.CreateManga(ctx, m))
	assert.NotZero(t, m.ID)

	got, err := repo.FindMangaByTitle(ctx, "Foo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "Bar", got.Author)
	assert.Equal(t, 2020, got.Year)
	assert.Equal(t, statsID, got.StatsID)
}

/*
TestService_ResolveVolume_SQLiteConflict leaves exactly one stats row per owner
after a duplicate volume is rejected by the unique constraint.
*/
func TestService_ResolveVolume_SQLiteConflict(t *testing.T) {
	db := testutil.TestDB(t)
	service := NewService(NewSQLiteRepository(db), stats.NewSQLiteRepository(db), testutil.Logger())
	ctx := context.Background()

	manga, err := service.ResolveManga(ctx, "Foo", Candidate{Author: "Bar", Year: 2020})
	require.NoError(t, err)

	volume, err := service.ResolveVolume(ctx, manga.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.Count(t, db, "stats"))

	_, err = service.ResolveVolume(ctx, manga.ID, 1)
	assert.ErrorIs(t, err, ErrVolumeExists)
	assert.Equal(t, 2, testutil.Count(t, db, "stats"))
	assert.Equal(t, 1, testutil.Count(t, db, "volume"))

	found, err := service.Volume(ctx, manga.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, volume.ID, found.ID)

	absent, err := service.Volume(ctx, manga.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, absent)
}
