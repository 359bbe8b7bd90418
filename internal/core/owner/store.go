// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import "context"

// # Repository Interfaces

type Repository interface {
	// FindMangaByTitle returns (nil, nil) when no manga has this title.
	FindMangaByTitle(context context.Context, title string) (*Manga, error)
	// CreateManga inserts m and fills in ID and CreatedAt.
	CreateManga(context context.Context, m *Manga) error
	// FindVolume returns (nil, nil) when the manga has no such volume.
	FindVolume(context context.Context, mangaID int64, number int) (*Volume, error)
	// CreateVolume inserts v and fills in ID and CreatedAt. A duplicate
	// (mangaId, number) is a conflict.
	CreateVolume(context context.Context, v *Volume) error
}

// StatsAllocator creates and removes the stats row owned by a manga or volume.
type StatsAllocator interface {
	Create(context context.Context) (int64, error)
	Delete(context context.Context, id int64) error
}
