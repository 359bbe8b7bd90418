// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ingest records one volume's term frequencies in the corpus.

An upload runs strictly in this order:

 1. Resolve the manga (created on first use) and create the volume.
 2. Add the observed counts to every term's lifetime total.
 3. Merge the counts into the manga scope and insert them into the volume scope.
 4. Recompute the manga stats, then the volume stats.

Any failure aborts the run. A volume that was already ingested is rejected
before any count is written, so a repeated upload never double-counts.
*/
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/mta/internal/core/frequency"
	"github.com/taibuivan/mta/internal/core/owner"
	"github.com/taibuivan/mta/internal/core/stats"
	"github.com/taibuivan/mta/internal/core/term"
	"github.com/taibuivan/mta/internal/platform/ctxutil"
	"github.com/taibuivan/mta/pkg/uuid"
)

// # Service Layer

type Service struct {
	terms       *term.Service
	owners      *owner.Service
	frequencies *frequency.Service
	stats       *stats.Service
	logger      *slog.Logger
}

func NewService(
	terms *term.Service,
	owners *owner.Service,
	frequencies *frequency.Service,
	stats *stats.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		terms:       terms,
		owners:      owners,
		frequencies: frequencies,
		stats:       stats,
		logger:      logger,
	}
}

/*
Upload records freq as the word counts of meta's volume.

Description: A run id is attached to the context when the caller did not
provide one. Empty terms and non-positive counts are dropped before
anything is written.

Errors:
  - VALIDATION_ERROR for invalid metadata
  - CONFLICT ([owner.ErrVolumeExists]) when the volume was already uploaded
  - any store failure, unchanged
*/
func (service *Service) Upload(context context.Context, meta Metadata, freq map[string]int64) error {
	if err := meta.Validate(); err != nil {
		return err
	}

	runID := ctxutil.GetRunID(context)
	if runID == "" {
		runID = uuid.New()
		context = ctxutil.WithRunID(context, runID)
	}
	logger := service.logger.With(slog.String("run_id", runID))
	started := time.Now()

	counts := Sanitize(freq)

	manga, err := service.owners.ResolveManga(context, meta.Title, owner.Candidate{
		Author: meta.Author,
		Year:   meta.Year,
	})
	if err != nil {
		return err
	}

	volume, err := service.owners.ResolveVolume(context, manga.ID, meta.Volume)
	if err != nil {
		return err
	}

	if err := service.terms.Upsert(context, counts); err != nil {
		return err
	}

	if err := service.frequencies.MergeManga(context, manga.ID, counts); err != nil {
		return err
	}

	if err := service.frequencies.InsertVolume(context, volume.ID, counts); err != nil {
		return err
	}

	mangaStats, err := service.stats.Recompute(context, manga.StatsID, frequency.MangaOwner(manga.ID))
	if err != nil {
		return err
	}

	volumeStats, err := service.stats.Recompute(context, volume.StatsID, frequency.VolumeOwner(volume.ID))
	if err != nil {
		return err
	}

	logger.Info("upload_completed",
		slog.String("title", manga.Title),
		slog.Int("volume", volume.Number),
		slog.Int("terms", len(counts)),
		slog.Int64("volume_total_words", volumeStats.TotalWords),
		slog.Int64("manga_total_words", mangaStats.TotalWords),
		slog.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// Sanitize drops empty terms and non-positive counts. Term text is kept
// exactly as given.
func Sanitize(freq map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(freq))
	for text, count := range freq {
		if text == "" || count <= 0 {
			continue
		}
		out[text] = count
	}
	return out
}
