// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the contest API.

# Domain Types

Submission is the single persisted entity. Its id is generated server-side
at insert time and its storage_method field records which backend actually
wrote it.

# Response Types

Each endpoint has a dedicated response struct so the JSON shape is explicit:

  - RootResponse for GET /
  - HealthResponse for GET /health
  - SubmissionResponse for POST /submit
  - CountResponse for GET /submissions/count
  - BackupResponse for GET /submissions/backup

Validation failures use ValidationErrorResponse, a list of FieldError
entries naming the failing field, the message, and the error type.
*/
package models
