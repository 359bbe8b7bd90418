// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"

	"github.com/taibuivan/mta/internal/core/frequency"
	"github.com/taibuivan/mta/internal/core/owner"
	"github.com/taibuivan/mta/internal/core/stats"
	"github.com/taibuivan/mta/internal/platform/apperr"
)

// Report is the stored state of a manga, or of one of its volumes.
type Report struct {
	Manga  *owner.Manga          `json:"manga"`
	Volume *owner.Volume         `json:"volume,omitempty"`
	Stats  *stats.Stats          `json:"stats"`
	Top    []frequency.Frequency `json:"top_terms"`
}

/*
Report loads the stats of title, or of its volume when volume is positive,
together with at most top of its most frequent terms.

Errors:
  - NOT_FOUND when the manga or volume does not exist
*/
func (service *Service) Report(context context.Context, title string, volume, top int) (*Report, error) {
	manga, err := service.owners.Manga(context, title)
	if err != nil {
		return nil, err
	}
	if manga == nil {
		return nil, apperr.NotFound("Manga")
	}

	report := &Report{Manga: manga}
	statsID, scope := manga.StatsID, frequency.MangaOwner(manga.ID)

	if volume > 0 {
		v, err := service.owners.Volume(context, manga.ID, volume)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, apperr.NotFound("Volume")
		}
		report.Volume = v
		statsID, scope = v.StatsID, frequency.VolumeOwner(v.ID)
	}

	report.Stats, err = service.stats.Get(context, statsID)
	if err != nil {
		return nil, err
	}
	if report.Stats == nil {
		return nil, apperr.NotFound("Stats")
	}

	report.Top, err = service.frequencies.Top(context, scope, top)
	if err != nil {
		return nil, err
	}
	return report, nil
}
