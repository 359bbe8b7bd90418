// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package analyze turns scanned manga pages into a term frequency map.

Pages are recognized concurrently, then tokenized and counted in path order,
so the same input always yields the same map.
*/
package analyze

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/mta/internal/platform/apperr"
)

// imageExtensions lists the page formats picked up from a directory.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tif", ".tiff"}

type Analyzer struct {
	recognizer Recognizer
	tokenizer  Tokenizer
	workers    int
	logger     *slog.Logger
}

func NewAnalyzer(recognizer Recognizer, tokenizer Tokenizer, workers int, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		recognizer: recognizer,
		tokenizer:  tokenizer,
		workers:    max(workers, 1),
		logger:     logger,
	}
}

/*
Analyze counts the terms on the page at path, or on every page image below
path when it is a directory.

Errors:
  - VALIDATION_ERROR when path holds no page image
  - the first recognition or read failure
*/
func (analyzer *Analyzer) Analyze(ctx context.Context, path string) (map[string]int64, error) {
	pages, err := Pages(path)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, apperr.ValidationError(fmt.Sprintf("No page images found in %s", path))
	}

	analyzer.logger.Info("analysis_started", slog.String("path", path), slog.Int("pages", len(pages)))

	texts := make([]string, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzer.workers)

	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(page)
			if err != nil {
				return fmt.Errorf("analyze: read %s: %w", page, err)
			}

			text, err := analyzer.recognizer.Recognize(gctx, data)
			if err != nil {
				return fmt.Errorf("analyze: recognize %s: %w", page, err)
			}

			analyzer.logger.Debug("page_recognized", slog.String("page", page), slog.Int("chars", len([]rune(text))))
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	freq := map[string]int64{}
	for _, text := range texts {
		for term, count := range Count(analyzer.tokenizer.Tokenize(text)) {
			freq[term] += count
		}
	}

	analyzer.logger.Info("analysis_completed", slog.Int("pages", len(pages)), slog.Int("terms", len(freq)))
	return freq, nil
}

// Pages returns path itself when it is a file, or every page image below
// it in lexical order when it is a directory.
func Pages(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var pages []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isImage(p) {
			pages = append(pages, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: walk %s: %w", path, err)
	}
	return pages, nil
}

func isImage(path string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(path)))
}
