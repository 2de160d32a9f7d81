// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers for the contest API.

SubmissionHandler receives the storage controller and configuration through
its constructor:

	h := handlers.NewSubmissionHandler(store, cfg)

# Error Mapping

  - Validation failures return 422 with per-field detail
  - Storage failures never surface on writes or reads: the controller
    degrades to memory and the request still succeeds
  - Anything else returns 500 with a generic message; detail goes to the
    server log only
*/
package handlers
