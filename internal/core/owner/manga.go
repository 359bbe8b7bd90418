// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import "time"

// Manga is a title whose vocabulary is aggregated across all its volumes.
// Title is the natural key.
type Manga struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	StatsID   int64     `json:"stats_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Candidate carries the metadata used when a manga has to be created.
// It is ignored for a manga that already exists.
type Candidate struct {
	Author string
	Year   int
}

// differs reports whether c names metadata that disagrees with m.
// Empty candidate fields never disagree.
func (c Candidate) differs(m *Manga) bool {
	if c.Author != "" && c.Author != m.Author {
		return true
	}
	return c.Year != 0 && c.Year != m.Year
}
