// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse loads server configuration.

Configuration is environment-first (parsed with struct tags), with a small
set of CLI flag overrides for local development:

	go run . -p 8000 -s postgres -d "postgres://..."

# Settings

Storage selection:

  - STORAGE_BACKEND (-s): supabase, sheets, or postgres; unset means memory
  - SUPABASE_URL / SUPABASE_ANON_KEY
  - GOOGLE_SHEETS_API_KEY / GOOGLE_SHEET_ID / GOOGLE_SHEET_RANGE
  - DATABASE_URL (-d), DATABASE_TYPE (-t), DB_POOL_MAX_SIZE

Server:

  - ENVIRONMENT: development enables debug logging
  - HOST (-host) / PORT (-p)
  - FRONTEND_ORIGINS / FRONTEND_ORIGIN / CORS_ALLOW_ORIGIN_REGEX

POSTGRES_URL and POSTGRES_URL_NON_POOLING are accepted as aliases for
DATABASE_URL because managed hosts export those names.
*/
package cliparse
