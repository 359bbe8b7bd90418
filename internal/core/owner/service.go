// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/platform/ctxutil"
)

// ErrVolumeExists is returned when a volume was already ingested.
var ErrVolumeExists = apperr.Conflict("volume already exists")

// # Service Layer

// Service resolves the manga and volume an ingestion is recorded against,
// creating each one together with its stats row.
type Service struct {
	repo   Repository
	stats  StatsAllocator
	logger *slog.Logger
}

func NewService(repo Repository, stats StatsAllocator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		stats:  stats,
		logger: logger,
	}
}

/*
ResolveManga returns the manga titled title, creating it when absent.

Description: An existing manga is returned unchanged. Its author and year
are never overwritten by a later ingestion. A new manga gets a fresh stats
row, which is deleted again if the manga insert fails.

Parameters:
  - context: context.Context
  - title: string (Natural key)
  - candidate: Candidate (Metadata for a new manga)

Returns:
  - *Manga: The existing or newly created manga
  - error: Store failures, with any cleanup failure joined
*/
func (service *Service) ResolveManga(context context.Context, title string, candidate Candidate) (*Manga, error) {
	existing, err := service.repo.FindMangaByTitle(context, title)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if candidate.differs(existing) {
			service.logger.Warn("manga_metadata_ignored",
				slog.String("run_id", ctxutil.GetRunID(context)),
				slog.Int64("manga_id", existing.ID),
				slog.String("stored_author", existing.Author),
				slog.Int("stored_year", existing.Year),
				slog.String("candidate_author", candidate.Author),
				slog.Int("candidate_year", candidate.Year),
			)
		}
		return existing, nil
	}

	statsID, err := service.stats.Create(context)
	if err != nil {
		return nil, err
	}

	manga := &Manga{
		Title:   title,
		Author:  candidate.Author,
		Year:    candidate.Year,
		StatsID: statsID,
	}

	if err := service.repo.CreateManga(context, manga); err != nil {
		return nil, service.releaseStats(context, statsID, err)
	}

	service.logger.Info("manga_created",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.Int64("manga_id", manga.ID),
		slog.String("title", manga.Title),
	)
	return manga, nil
}

/*
ResolveVolume creates volume number of mangaID together with its stats row.

Description: A volume is only ever created, never reused. If the volume
already exists the new stats row is deleted and [ErrVolumeExists] is
returned, so a repeated ingestion cannot double-count.

Returns:
  - *Volume: The newly created volume
  - error: [ErrVolumeExists] on duplicates, otherwise store failures
*/
func (service *Service) ResolveVolume(context context.Context, mangaID int64, number int) (*Volume, error) {
	statsID, err := service.stats.Create(context)
	if err != nil {
		return nil, err
	}

	volume := &Volume{
		MangaID: mangaID,
		Number:  number,
		StatsID: statsID,
	}

	if err := service.repo.CreateVolume(context, volume); err != nil {
		if apperr.IsConflict(err) {
			err = ErrVolumeExists.WithCause(err)
		}
		return nil, service.releaseStats(context, statsID, err)
	}

	service.logger.Info("volume_created",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.Int64("manga_id", mangaID),
		slog.Int64("volume_id", volume.ID),
		slog.Int("volume", number),
	)
	return volume, nil
}

// releaseStats deletes an orphaned stats row and returns cause joined with
// any deletion failure.
func (service *Service) releaseStats(context context.Context, statsID int64, cause error) error {
	if err := service.stats.Delete(context, statsID); err != nil {
		service.logger.Error("stats_cleanup_failed",
			slog.Int64("stats_id", statsID),
			slog.Any("error", err),
		)
		return errors.Join(cause, err)
	}
	return cause
}

// # Lookups

// Manga returns the manga titled title, or (nil, nil).
func (service *Service) Manga(context context.Context, title string) (*Manga, error) {
	return service.repo.FindMangaByTitle(context, title)
}

// Volume returns volume number of mangaID, or (nil, nil).
func (service *Service) Volume(context context.Context, mangaID int64, number int) (*Volume, error) {
	return service.repo.FindVolume(context, mangaID, number)
}
