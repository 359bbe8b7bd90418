// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command mta analyzes scanned manga volumes and records their word
// frequencies in the corpus store.
//
// # Commands
//
//   - upload: OCR a page or a directory of pages and record the counts.
//   - migrate: apply the store schema and exit.
//   - stats: print the stored stats of a manga or volume as JSON.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/platform/constants"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:    constants.AppName,
		Usage:   "Manga text analyzer: OCR word frequencies per manga and volume",
		Version: constants.AppVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "Path to a .env file",
				Value:   ".env",
				Sources: cli.EnvVars("MTA_ENV_FILE"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			uploadCommand(),
			migrateCommand(),
			statsCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		os.Exit(fail(err))
	}
}

// fail is the single place a command error is logged. It returns the exit code.
func fail(err error) int {
	slog.Error("command_failed", slog.Any("error", err))
	return apperr.ExitCodeOf(err)
}
