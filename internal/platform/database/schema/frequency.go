// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// FrequencyTable represents the 'frequency' table
type FrequencyTable struct {
	Table    string
	Term     string
	MangaID  string
	VolumeID string
	Count    string
}

// Frequency is the schema definition for frequency.
// Exactly one of MangaID and VolumeID is set on every row.
var Frequency = FrequencyTable{
	Table:    "frequency",
	Term:     "term",
	MangaID:  "mangaid",
	VolumeID: "volumeid",
	Count:    "count",
}
