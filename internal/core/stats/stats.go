// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import "time"

// Stats is the derived vocabulary profile of one manga or one volume.
// It is always recomputed in full from the owner's frequency rows.
type Stats struct {
	ID               int64     `json:"id"`
	UniqueWords      int64     `json:"unique_words"`
	TotalWords       int64     `json:"total_words"`
	WordsUsedOnce    int64     `json:"words_used_once"`
	WordsUsedOncePct float64   `json:"words_used_once_pct"`
	UpdatedAt        time.Time `json:"updated_at"`
}

/*
Compute derives a Stats profile from an owner's term counts.

Description: Counts of zero add nothing and are not unique words. An owner
without any positive count gets a percentage of 0.
*/
func Compute(counts []int64) Stats {
	var s Stats
	for _, count := range counts {
		if count <= 0 {
			continue
		}
		s.TotalWords += count
		s.UniqueWords++
		if count == 1 {
			s.WordsUsedOnce++
		}
	}

	if s.UniqueWords > 0 {
		s.WordsUsedOncePct = 100 * float64(s.WordsUsedOnce) / float64(s.UniqueWords)
	}
	return s
}
