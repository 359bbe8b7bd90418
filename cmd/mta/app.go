// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"github.com/taibuivan/mta/internal/analyze"
	"github.com/taibuivan/mta/internal/ingest"
	"github.com/taibuivan/mta/internal/platform/apperr"
	"github.com/taibuivan/mta/internal/platform/config"
	"github.com/taibuivan/mta/internal/platform/constants"
	"github.com/taibuivan/mta/internal/platform/migration"
	pgstore "github.com/taibuivan/mta/internal/platform/postgres"
	redisstore "github.com/taibuivan/mta/internal/platform/redis"
	"github.com/taibuivan/mta/internal/platform/sqlite"
)

// application holds the wired dependencies of one command invocation.
type application struct {
	config *config.Config
	logger *slog.Logger
	ingest *ingest.Service

	pool  *pgxpool.Pool
	db    *sql.DB
	redis *goredis.Client
}

// # Startup Sequence
//
//  1. Load configuration (.env, then environment).
//  2. Initialize the structured logger.
//  3. Connect to the selected store.
//  4. Run migrations when autoMigrate and AUTO_MIGRATE are both set.

func bootstrap(ctx context.Context, cmd *cli.Command, autoMigrate bool) (*application, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return nil, apperr.ValidationError(err.Error())
	}

	logger := newLogger(cfg.Debug || cmd.Bool("verbose"))
	slog.SetDefault(logger)

	logger.Debug("configuration_loaded",
		slog.String("store_driver", cfg.StoreDriver),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
		slog.Int("ocr_workers", cfg.OCRWorkers),
	)

	startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer cancel()

	app := &application{config: cfg, logger: logger}

	if cfg.IsSQLite() {
		app.db, err = sqlite.Open(startupCtx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, apperr.Unavailable(err)
		}
		app.ingest = ingest.NewSQLite(app.db, logger)
	} else {
		app.pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, apperr.Unavailable(err)
		}
		app.ingest = ingest.NewPostgres(app.pool, logger)
	}

	if autoMigrate && cfg.AutoMigrate {
		if err := app.migrate(); err != nil {
			app.Close()
			return nil, err
		}
	}

	return app, nil
}

func (app *application) migrate() error {
	if err := migration.RunUp(app.config.StoreDriver, app.config.DatabaseURL, app.logger); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// analyzer builds the OCR pipeline. An unreachable cache only disables caching.
func (app *application) analyzer(ctx context.Context) (*analyze.Analyzer, error) {
	tokenizer, err := analyze.NewKagomeTokenizer()
	if err != nil {
		return nil, err
	}

	var recognizer analyze.Recognizer = analyze.NewTesseractRecognizer(app.config.OCRLanguages)

	if app.config.CacheEnabled() {
		client, err := redisstore.NewClient(ctx, app.config.RedisURL, app.logger)
		if err != nil {
			app.logger.Warn("ocr_cache_disabled", slog.Any("error", err))
		} else {
			app.redis = client
			recognizer = analyze.NewCachedRecognizer(recognizer,
				analyze.NewRedisCache(client, app.config.OCRCacheTTL), app.logger)
		}
	}

	return analyze.NewAnalyzer(recognizer, tokenizer, app.config.OCRWorkers, app.logger), nil
}

func (app *application) Close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("redis_close_failed", slog.Any("error", err))
		}
	}
	if app.pool != nil {
		app.pool.Close()
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("sqlite_close_failed", slog.Any("error", err))
		}
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// requireArg returns the single positional argument of cmd.
func requireArg(cmd *cli.Command, name string) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", apperr.ValidationError(fmt.Sprintf("Expected exactly one <%s> argument", name))
	}
	return cmd.Args().First(), nil
}
