// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/testutil"
)

/*
TestPostgresRepository_UpsertTotals verifies the batched upsert inserts new
terms and overwrites the total of existing ones.
*/
func TestPostgresRepository_UpsertTotals(t *testing.T) {
	repo := NewPostgresRepository(testutil.TestPool(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertTotals(ctx, map[string]int64{"猫": 3, "犬": 1}))
	require.NoError(t, repo.UpsertTotals(ctx, map[string]int64{"猫": 5, "ｶﾞ": 1, "ガ": 2}))

	totals, err := repo.Totals(ctx, []string{"猫", "犬", "ｶﾞ", "ガ", "鳥"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"猫": 5, "犬": 1, "ｶﾞ": 1, "ガ": 2}, totals)

	got, err := repo.GetTerm(ctx, "猫")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, Term{Text: "猫", TotalCount: 5}, *got)

	missing, err := repo.GetTerm(ctx, "鳥")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
