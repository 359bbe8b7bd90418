// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frequency

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/taibuivan/mta/internal/platform/ctxutil"
)

// Service merges newly observed term counts into the per-owner running totals.
//
// # Scope Asymmetry
//
// Manga-scope writes are upserts: a manga accumulates counts over many
// volumes. Volume-scope writes are inserts only: a volume row is created
// exactly once, in the same run that records its counts, so it can never
// already hold a count. Keep the two paths separate.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// MergeManga adds freq to the manga's existing counts (absent counts are
// zero) and writes all merged counts in one batched upsert.
func (service *Service) MergeManga(context context.Context, mangaID int64, freq map[string]int64) error {
	if len(freq) == 0 {
		return nil
	}

	terms := slices.Sorted(maps.Keys(freq))

	existing, err := service.repo.Counts(context, MangaOwner(mangaID), terms)
	if err != nil {
		return err
	}

	merged := make(map[string]int64, len(terms))
	for _, text := range terms {
		merged[text] = existing[text] + freq[text]
	}

	if err := service.repo.UpsertMangaCounts(context, mangaID, merged); err != nil {
		return err
	}

	service.logger.Info("manga_frequencies_merged",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.Int64("manga_id", mangaID),
		slog.Int("terms", len(terms)),
		slog.Int("existing", len(existing)),
	)
	return nil
}

// InsertVolume records freq for a volume.
//
// Precondition: volumeID was created in the current run by
// owner.Service.ResolveVolume and holds no frequency rows.
func (service *Service) InsertVolume(context context.Context, volumeID int64, freq map[string]int64) error {
	if len(freq) == 0 {
		return nil
	}

	if err := service.repo.InsertVolumeCounts(context, volumeID, freq); err != nil {
		return err
	}

	service.logger.Info("volume_frequencies_inserted",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.Int64("volume_id", volumeID),
		slog.Int("terms", len(freq)),
	)
	return nil
}

// List returns every frequency row owned by owner, highest count first.
func (service *Service) List(context context.Context, owner Owner) ([]Frequency, error) {
	return service.repo.List(context, owner)
}

// Top returns at most n of the owner's most frequent terms.
func (service *Service) Top(context context.Context, owner Owner, n int) ([]Frequency, error) {
	rows, err := service.repo.List(context, owner)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}
