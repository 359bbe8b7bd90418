// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/testutil"
)

func TestSQLiteRepository_MangaUpsert(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, db, "Yotsuba")
	testutil.SeedTerms(t, db, "猫", "犬")

	require.NoError(t, repo.UpsertMangaCounts(ctx, mangaID, map[string]int64{"猫": 3, "犬": 1}))
	require.NoError(t, repo.UpsertMangaCounts(ctx, mangaID, map[string]int64{"猫": 7}))

	counts, err := repo.Counts(ctx, MangaOwner(mangaID), []string{"猫", "犬", "鳥"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"猫": 7, "犬": 1}, counts)
	assert.Equal(t, 2, testutil.Count(t, db, "frequency"))
}

/*
TestSQLiteRepository_VolumeInsertConflict verifies volume rows are insert-only
and a duplicate leaves the transaction rolled back.
*/
func TestSQLiteRepository_VolumeInsertConflict(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, db, "Yotsuba")
	volumeID := testutil.SeedVolume(t, db, mangaID, 1)
	testutil.SeedTerms(t, db, "猫", "犬")

	require.NoError(t, repo.InsertVolumeCounts(ctx, volumeID, map[string]int64{"猫": 3}))

	err := repo.InsertVolumeCounts(ctx, volumeID, map[string]int64{"犬": 1, "猫": 1})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	rows, err := repo.List(ctx, VolumeOwner(volumeID))
	require.NoError(t, err)
	assert.Equal(t, []Frequency{{Term: "猫", Owner: VolumeOwner(volumeID), Count: 3}}, rows)
}

/*
TestSQLiteRepository_OwnerScopes keeps manga and volume rows for the same term apart.
*/
func TestSQLiteRepository_OwnerScopes(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, db, "Yotsuba")
	volumeID := testutil.SeedVolume(t, db, mangaID, 1)
	testutil.SeedTerms(t, db, "猫")

	require.NoError(t, repo.UpsertMangaCounts(ctx, mangaID, map[string]int64{"猫": 4}))
	require.NoError(t, repo.InsertVolumeCounts(ctx, volumeID, map[string]int64{"猫": 2}))

	manga, err := repo.Counts(ctx, MangaOwner(mangaID), []string{"猫"})
	require.NoError(t, err)
	volume, err := repo.Counts(ctx, VolumeOwner(volumeID), []string{"猫"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), manga["猫"])
	assert.Equal(t, int64(2), volume["猫"])
}

func TestSQLiteRepository_ListOrdering(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, db, "Yotsuba")
	testutil.SeedTerms(t, db, "a", "b", "c")
	require.NoError(t, repo.UpsertMangaCounts(ctx, mangaID, map[string]int64{"a": 1, "b": 5, "c": 1}))

	rows, err := repo.List(ctx, MangaOwner(mangaID))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "b", rows[0].Term)
	assert.Equal(t, "a", rows[1].Term)
	assert.Equal(t, "c", rows[2].Term)
}

func TestSQLiteRepository_CountsChunked(t *testing.T) {
	db := testutil.TestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, db, "Yotsuba")
	counts := map[string]int64{}
	var terms []string
	for i := 0; i < 1100; i++ {
		text := fmt.Sprintf("語%04d", i)
		counts[text] = 1
		terms = append(terms, text)
	}
	testutil.SeedTerms(t, db, terms...)
	require.NoError(t, repo.UpsertMangaCounts(ctx, mangaID, counts))

	got, err := repo.Counts(ctx, MangaOwner(mangaID), terms)
	require.NoError(t, err)
	assert.Len(t, got, 1100)
}
