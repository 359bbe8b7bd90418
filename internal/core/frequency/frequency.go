// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import (
	"fmt"

	"github.com/taibuivan/mta/internal/platform/database/schema"
)

// Kind is the owner scope a frequency row is aggregated under.
type Kind string

const (
	KindManga  Kind = "manga"
	KindVolume Kind = "volume"
)

// Owner identifies one manga or one volume.
type Owner struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`
}

func MangaOwner(id int64) Owner  { return Owner{Kind: KindManga, ID: id} }
func VolumeOwner(id int64) Owner { return Owner{Kind: KindVolume, ID: id} }

func (o Owner) String() string {
	return fmt.Sprintf("%s:%d", o.Kind, o.ID)
}

// column returns the frequency column holding this owner's id.
func (o Owner) column() (string, error) {
	switch o.Kind {
	case KindManga:
		return schema.Frequency.MangaID, nil
	case KindVolume:
		return schema.Frequency.VolumeID, nil
	default:
		return "", fmt.Errorf("frequency: unknown owner kind %q", o.Kind)
	}
}

// Frequency is the running total of one term within one owner's scope,
// across every ingestion ever performed for that owner.
type Frequency struct {
	Term  string `json:"term"`
	Owner Owner  `json:"owner"`
	Count int64  `json:"count"`
}
