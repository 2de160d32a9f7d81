// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate turns raw request bodies into well-formed submissions.

ParsePayload runs an ordered chain of parse attempts (raw bytes as JSON
regardless of content type, then form-encoding) and Submission applies the
field rules:

  - name: at least 2 characters after trimming
  - email: contains @ after trim/lowercase (no further RFC validation)
  - answer: at least 5 characters after trimming
  - timestamp: optional, accepted verbatim

Both functions are pure; id and server-side timestamp assignment belong to
the caller and the storage layer.
*/
package validate
