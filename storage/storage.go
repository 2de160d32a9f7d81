// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/anytime-contest/models"
)

// Adapter is the fixed insert/count/list contract every backend implements.
// Implementations must be safe for concurrent use and must signal failure
// with a *StorageError instead of panicking across the boundary.
type Adapter interface {
	// Name returns the backend name reported in API responses.
	Name() string

	// Insert persists one submission, generating its id (and timestamp, if
	// empty) when not already set, and returns the id. It must fail clearly
	// when the underlying store is unreachable rather than fabricating an id.
	Insert(ctx context.Context, sub models.Submission) (string, error)

	// Count returns the number of persisted submissions.
	Count(ctx context.Context) (int, error)

	// List returns up to limit submissions, newest first.
	List(ctx context.Context, limit int) ([]models.Submission, error)

	// Ping probes the backend with a lightweight read.
	Ping(ctx context.Context) error
}

// StorageError wraps any failure crossing an adapter boundary with the
// backend and operation that produced it.
type StorageError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func newError(backend, op string, err error) *StorageError {
	return &StorageError{Backend: backend, Op: op, Err: err}
}

// NewSubmissionID generates a submission id. The timestamp part keeps ids
// human-sortable; the random suffix keeps them unique when two requests
// land in the same microsecond.
func NewSubmissionID(now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("sub_%s%06d_%s", now.Format("20060102_150405"), now.Nanosecond()/1000, suffix)
}

// ISOTime formats a time the way the rest of the system stores timestamps.
func ISOTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000000")
}
