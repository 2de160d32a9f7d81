// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging with duration
  - CORS: origin allow-list plus origin regex from configuration
  - SecurityHeaders: browser hardening headers and no-store caching for
    the dynamic endpoints
  - JSONResponse / ErrorResponse: JSON writing helpers
*/
package middleware
