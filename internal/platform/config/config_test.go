// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/platform/config"
)

// clearEnv unsets keys for the duration of the test and restores them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var allKeys = []string{
	"DEBUG", "DATABASE_URL", "STORE_DRIVER", "AUTO_MIGRATE", "REDIS_URL",
	"OCR_CACHE_TTL", "OCR_LANGUAGES", "OCR_WORKERS",
}

/*
TestLoad_Defaults verifies default values when only the required key is set.
*/
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mta")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.IsSQLite())
	assert.Equal(t, []string{"jpn", "jpn_vert"}, cfg.OCRLanguages)
	assert.Equal(t, 2, cfg.OCRWorkers)
	assert.Equal(t, 720*time.Hour, cfg.OCRCacheTTL)
}

/*
TestLoad_MissingDatabaseURL fails when the required key is absent.
*/
func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t, allKeys...)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

/*
TestLoad_InvalidDriver rejects unknown store drivers.
*/
func TestLoad_InvalidDriver(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("DATABASE_URL", "mta.db")
	t.Setenv("STORE_DRIVER", "mysql")

	_, err := config.Load("")
	require.Error(t, err)
}

/*
TestLoad_WorkerBounds rejects worker counts outside 1..32.
*/
func TestLoad_WorkerBounds(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("DATABASE_URL", "mta.db")
	t.Setenv("OCR_WORKERS", "0")

	_, err := config.Load("")
	require.Error(t, err)
}

/*
TestLoad_EnvFile reads values from a .env file without overriding the process environment.
*/
func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("OCR_WORKERS", "4")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=./corpus.db\nSTORE_DRIVER=sqlite\nOCR_WORKERS=8\nREDIS_URL=redis://localhost:6379/0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DATABASE_URL")
		_ = os.Unsetenv("STORE_DRIVER")
		_ = os.Unsetenv("REDIS_URL")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./corpus.db", cfg.DatabaseURL)
	assert.True(t, cfg.IsSQLite())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 4, cfg.OCRWorkers)
}

/*
TestLoad_MissingEnvFile treats an absent .env file as empty.
*/
func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("DATABASE_URL", "mta.db")
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
}
