// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MangaTable represents the 'manga' table
type MangaTable struct {
	Table     string
	ID        string
	Title     string
	Author    string
	Year      string
	StatsID   string
	CreatedAt string
}

// Manga is the schema definition for manga
var Manga = MangaTable{
	Table:     "manga",
	ID:        "id",
	Title:     "title",
	Author:    "author",
	Year:      "year",
	StatsID:   "statsid",
	CreatedAt: "createdat",
}

func (t MangaTable) Columns() []string {
	return []string{t.ID, t.Title, t.Author, t.Year, t.StatsID, t.CreatedAt}
}
