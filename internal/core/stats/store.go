// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"

	"github.com/taibuivan/mta/internal/core/frequency"
)

type Repository interface {
	// Create inserts a zeroed row and returns its id.
	Create(context context.Context) (int64, error)
	Delete(context context.Context, id int64) error
	// Get returns (nil, nil) when the row does not exist.
	Get(context context.Context, id int64) (*Stats, error)
	// Update overwrites the counters of s.ID. A missing row is NotFound.
	Update(context context.Context, s *Stats) error
}

// CountSource lists every frequency row an owner holds.
type CountSource interface {
	List(context context.Context, owner frequency.Owner) ([]frequency.Frequency, error)
}
