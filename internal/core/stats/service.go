// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/mta/internal/core/frequency"
	"github.com/taibuivan/mta/internal/platform/ctxutil"
)

type Service struct {
	repo   Repository
	counts CountSource
	logger *slog.Logger
}

func NewService(repo Repository, counts CountSource, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		counts: counts,
		logger: logger,
	}
}

// Create allocates a zeroed stats row for a new manga or volume.
func (service *Service) Create(context context.Context) (int64, error) {
	return service.repo.Create(context)
}

// Delete removes a stats row whose owner could not be created.
func (service *Service) Delete(context context.Context, id int64) error {
	return service.repo.Delete(context, id)
}

func (service *Service) Get(context context.Context, id int64) (*Stats, error) {
	return service.repo.Get(context, id)
}

/*
Recompute rebuilds stats row statsID from every frequency row of owner.

Description: The previous counters are discarded, never patched.

Errors:
  - NotFound when statsID does not exist
*/
func (service *Service) Recompute(context context.Context, statsID int64, owner frequency.Owner) (*Stats, error) {
	rows, err := service.counts.List(context, owner)
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(rows))
	for i, row := range rows {
		counts[i] = row.Count
	}

	s := Compute(counts)
	s.ID = statsID
	s.UpdatedAt = time.Now().UTC()

	if err := service.repo.Update(context, &s); err != nil {
		return nil, err
	}

	service.logger.Info("stats_recomputed",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.String("owner", owner.String()),
		slog.Int64("stats_id", statsID),
		slog.Int64("unique_words", s.UniqueWords),
		slog.Int64("total_words", s.TotalWords),
		slog.Int64("words_used_once", s.WordsUsedOnce),
		slog.Float64("words_used_once_pct", s.WordsUsedOncePct),
	)
	return &s, nil
}
