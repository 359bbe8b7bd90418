// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/taibuivan/mta/internal/platform/ctxutil"
)

// Service maintains each term's lifetime total.
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

// Upsert adds every observed count in freq to its term's total, creating
// terms on first use. A missing term counts as a total of zero.
func (service *Service) Upsert(context context.Context, freq map[string]int64) error {
	if len(freq) == 0 {
		return nil
	}

	terms := slices.Sorted(maps.Keys(freq))

	existing, err := service.repo.Totals(context, terms)
	if err != nil {
		return err
	}

	totals := make(map[string]int64, len(terms))
	for _, text := range terms {
		totals[text] = existing[text] + freq[text]
	}

	if err := service.repo.UpsertTotals(context, totals); err != nil {
		return err
	}

	service.logger.Info("terms_upserted",
		slog.String("run_id", ctxutil.GetRunID(context)),
		slog.Int("terms", len(terms)),
		slog.Int("created", len(terms)-len(existing)),
	)
	return nil
}

func (service *Service) GetTerm(context context.Context, text string) (*Term, error) {
	return service.repo.GetTerm(context, text)
}
