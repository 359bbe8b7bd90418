// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/core/frequency"
	"github.com/taibuivan/mta/internal/core/stats"
	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/testutil"
)

/*
TestPostgresRepository_VolumeUniqueViolation verifies SQLSTATE 23505 on
(mangaid, volume) reaches the caller as [ErrVolumeExists] and the spare stats
row is released.
*/
func TestPostgresRepository_VolumeUniqueViolation(t *testing.T) {
	pool := testutil.TestPool(t)
	ctx := context.Background()

	statsService := stats.NewService(
		stats.NewPostgresRepository(pool),
		frequency.NewService(frequency.NewPostgresRepository(pool), testutil.Logger()),
		testutil.Logger(),
	)
	service := NewService(NewPostgresRepository(pool), statsService, testutil.Logger())

	manga, err := service.ResolveManga(ctx, "Foo", Candidate{Author: "Bar", Year: 2020})
	require.NoError(t, err)
	assert.NotZero(t, manga.ID)
	assert.False(t, manga.CreatedAt.IsZero())

	first, err := service.ResolveVolume(ctx, manga.ID, 1)
	require.NoError(t, err)

	_, err = service.ResolveVolume(ctx, manga.ID, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVolumeExists)
	assert.Equal(t, apperr.ExitConflict, apperr.ExitCodeOf(err))

	var statsRows int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM stats`).Scan(&statsRows))
	assert.Equal(t, 2, statsRows)

	got, err := service.Volume(ctx, manga.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}
