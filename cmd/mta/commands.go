// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/taibuivan/mta/internal/ingest"
	"github.com/taibuivan/mta/internal/platform/ctxutil"
	"github.com/taibuivan/mta/pkg/uuid"
)

// # Upload

func uploadCommand() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "OCR a page image or a directory of pages and record its word counts",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "meta", Usage: "YAML metadata file (title, author, year, volume)"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Manga title"},
			&cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: "Manga author"},
			&cli.IntFlag{Name: "year", Aliases: []string{"y"}, Usage: "Publication year"},
			&cli.IntFlag{Name: "volume", Aliases: []string{"n"}, Usage: "Volume number"},
		},
		Action: runUpload,
	}
}

func runUpload(ctx context.Context, cmd *cli.Command) error {
	path, err := requireArg(cmd, "path")
	if err != nil {
		return err
	}

	meta, err := metadataFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := meta.Validate(); err != nil {
		return err
	}

	app, err := bootstrap(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer app.Close()

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	ctx = ctxutil.WithLogger(ctx, app.logger.With(slog.String("run_id", runID)))

	analyzer, err := app.analyzer(ctx)
	if err != nil {
		return err
	}

	freq, err := analyzer.Analyze(ctx, path)
	if err != nil {
		return err
	}

	return app.ingest.Upload(ctx, meta, freq)
}

// metadataFromFlags reads --meta when given, then applies the explicit flags.
func metadataFromFlags(cmd *cli.Command) (ingest.Metadata, error) {
	var meta ingest.Metadata

	if file := cmd.String("meta"); file != "" {
		loaded, err := ingest.LoadMetadataFile(file)
		if err != nil {
			return meta, err
		}
		meta = loaded
	}

	return meta.Override(ingest.Metadata{
		Title:  cmd.String("title"),
		Author: cmd.String("author"),
		Year:   int(cmd.Int("year")),
		Volume: int(cmd.Int("volume")),
	}), nil
}

// # Migrate

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the store schema and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := bootstrap(ctx, cmd, false)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.migrate()
		},
	}
}

// # Stats

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print the stored stats of a manga, or of one volume, as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Manga title", Required: true},
			&cli.IntFlag{Name: "volume", Aliases: []string{"n"}, Usage: "Volume number (0 for the whole manga)"},
			&cli.IntFlag{Name: "top", Usage: "Number of most frequent terms to include", Value: 20},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := bootstrap(ctx, cmd, true)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.ingest.Report(ctx, cmd.String("title"), int(cmd.Int("volume")), int(cmd.Int("top")))
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}
}
