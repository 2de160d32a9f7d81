// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"regexp"
	"testing"
	"time"
)

var submissionIDPattern = regexp.MustCompile(`^sub_\d{8}_\d{12}_[0-9a-f]{8}$`)

func TestNewSubmissionID(t *testing.T) {
	now := time.Date(2026, 8, 23, 14, 23, 1, 123456000, time.UTC)
	id := NewSubmissionID(now)

	if !submissionIDPattern.MatchString(id) {
		t.Errorf("id %q does not match pattern", id)
	}
	if want := "sub_20260823_142301123456_"; id[:len(want)] != want {
		t.Errorf("expected id prefix %q, got %q", want, id)
	}
}

func TestNewSubmissionIDUnique(t *testing.T) {
	// Same instant must still produce distinct ids.
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewSubmissionID(now)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestISOTime(t *testing.T) {
	ts := ISOTime(time.Date(2026, 8, 23, 14, 23, 1, 123456000, time.UTC))
	if ts != "2026-08-23T14:23:01.123456" {
		t.Errorf("unexpected timestamp format: %q", ts)
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := &StorageError{Backend: "postgres", Op: "ping", Err: errTest}
	if cause.Unwrap() != errTest {
		t.Error("Unwrap should return the cause")
	}
	if cause.Error() != "postgres ping: test failure" {
		t.Errorf("unexpected error string: %q", cause.Error())
	}
}
