// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import "context"

type Repository interface {
	// Counts returns the stored count of each of terms within owner's scope.
	// Terms without a row are omitted.
	Counts(context context.Context, owner Owner, terms []string) (map[string]int64, error)
	// UpsertMangaCounts writes counts keyed on (term, mangaId) as one batch.
	UpsertMangaCounts(context context.Context, mangaID int64, counts map[string]int64) error
	// InsertVolumeCounts inserts counts for a volume that holds no rows yet.
	// An existing (term, volumeId) row is a conflict, never an update.
	InsertVolumeCounts(context context.Context, volumeID int64, counts map[string]int64) error
	// List returns every row owned by owner, highest count first.
	List(context context.Context, owner Owner) ([]Frequency, error)
}
