// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import "context"

type Repository interface {
	// Totals returns the stored total for each of terms that exists.
	// Terms without a row are omitted; absence is not an error.
	Totals(context context.Context, terms []string) (map[string]int64, error)
	// UpsertTotals writes totals keyed on term text as one batch.
	UpsertTotals(context context.Context, totals map[string]int64) error
	// GetTerm returns nil when the term has never been seen.
	GetTerm(context context.Context, text string) (*Term, error)
}
