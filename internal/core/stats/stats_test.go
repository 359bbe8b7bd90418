// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		counts []int64
		want   Stats
	}{
		{
			name:   "no terms",
			counts: nil,
			want:   Stats{},
		},
		{
			name:   "single volume upload",
			counts: []int64{3, 1},
			want:   Stats{UniqueWords: 2, TotalWords: 4, WordsUsedOnce: 1, WordsUsedOncePct: 50},
		},
		{
			name:   "all hapax",
			counts: []int64{1, 1, 1},
			want:   Stats{UniqueWords: 3, TotalWords: 3, WordsUsedOnce: 3, WordsUsedOncePct: 100},
		},
		{
			name:   "zero counts ignored",
			counts: []int64{0, 0, 2},
			want:   Stats{UniqueWords: 1, TotalWords: 2},
		},
		{
			name:   "only zero counts",
			counts: []int64{0},
			want:   Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.counts))
		})
	}
}

func TestCompute_Fraction(t *testing.T) {
	got := Compute([]int64{1, 2, 5})
	assert.InDelta(t, 33.333, got.WordsUsedOncePct, 0.001)
}
