// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ANYTIME Contest API server.

The server accepts contest-entry submissions over HTTP and persists them to
one of several interchangeable storage backends (Supabase, Google Sheets,
PostgreSQL, or transient in-process memory), selected by configuration at
startup and degraded per-call to memory when the selected backend fails.

# Starting the Server

The server is configured through environment variables (a .env file is
loaded if present) with CLI flag overrides:

	STORAGE_BACKEND=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8000 -s postgres -d "postgres://..."

# Configuration

See package cliparse for the full configuration surface. With no backend
configured the server runs on in-memory storage, which loses data on
restart.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (root, health, submit, count, backup)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, security headers, logging, JSON helpers
  - models: Domain and request/response types
  - validate: Request body parsing and field validation
  - storage: Backend adapters and the selection/fallback controller
  - db: Schema creation for the relational backend
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
