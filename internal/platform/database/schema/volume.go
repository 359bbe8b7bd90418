// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// VolumeTable represents the 'volume' table
type VolumeTable struct {
	Table     string
	ID        string
	MangaID   string
	Volume    string
	StatsID   string
	CreatedAt string
}

// Volume is the schema definition for volume
var Volume = VolumeTable{
	Table:     "volume",
	ID:        "id",
	MangaID:   "mangaid",
	Volume:    "volume",
	StatsID:   "statsid",
	CreatedAt: "createdat",
}

func (t VolumeTable) Columns() []string {
	return []string{t.ID, t.MangaID, t.Volume, t.StatsID, t.CreatedAt}
}
