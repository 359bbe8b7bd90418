// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used across an ingestion run.
//
// # Safety
//
// Using a private, unexported type for keys prevents collisions with third-party
// packages that might also use context for storage.
package ctxkey

type key string

const (
	// KeyRunID is the context key for the UUIDv7 identifying one ingestion run.
	KeyRunID key = "run_id"

	// KeyLogger is the context key for the per-run [*log/slog.Logger].
	KeyLogger key = "logger"
)
