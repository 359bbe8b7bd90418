// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire tool.

Categories:

  - Metadata: Application name and version reported in logs.
  - Store Timing: Statement and startup deadlines.
  - Cache Taxonomy: Redis key prefixes.
  - Store Drivers: Names accepted by STORE_DRIVER.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "mta"
	AppVersion = "0.1.0-dev"
)

// # Store Timing

const (
	// StatementTimeout bounds every statement sent to PostgreSQL.
	StatementTimeout = 30 * time.Second

	// StartupTimeout bounds store/cache connection and migration at startup.
	StartupTimeout = 30 * time.Second
)

// # Store Drivers

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixPageText keys the OCR text of a page by the sha256 of its bytes.
	RedisPrefixPageText = "mta:ocr:page:"
)

// # Metadata Limits

const (
	MaxTitleLen  = 300
	MaxAuthorLen = 200
	MinYear      = 1900
	MaxYear      = 2100
)
