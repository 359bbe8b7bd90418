// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StatsTable represents the 'stats' table
type StatsTable struct {
	Table            string
	ID               string
	UniqueWords      string
	TotalWords       string
	WordsUsedOnce    string
	WordsUsedOncePct string
	UpdatedAt        string
}

// Stats is the schema definition for stats
var Stats = StatsTable{
	Table:            "stats",
	ID:               "id",
	UniqueWords:      "uniquewords",
	TotalWords:       "totalwords",
	WordsUsedOnce:    "wordsusedonce",
	WordsUsedOncePct: "wordsusedoncepct",
	UpdatedAt:        "updatedat",
}

func (t StatsTable) Columns() []string {
	return []string{t.ID, t.UniqueWords, t.TotalWords, t.WordsUsedOnce, t.WordsUsedOncePct, t.UpdatedAt}
}
