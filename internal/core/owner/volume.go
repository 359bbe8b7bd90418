// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import "time"

// Volume is one numbered volume of a manga, created once per ingestion.
type Volume struct {
	ID        int64     `json:"id"`
	MangaID   int64     `json:"manga_id"`
	Number    int       `json:"number"`
	StatsID   int64     `json:"stats_id"`
	CreatedAt time.Time `json:"created_at"`
}
