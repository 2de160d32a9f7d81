// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/danielhkuo/anytime-contest/models"
)

func TestMemoryInsert(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, models.Submission{
		Name:   "Alice",
		Email:  "a@b.com",
		Answer: "hello world",
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !submissionIDPattern.MatchString(id) {
		t.Errorf("id %q does not match pattern", id)
	}

	subs, err := m.List(ctx, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(subs))
	}
	if subs[0].StorageMethod != models.BackendMemory {
		t.Errorf("expected storage_method memory, got %q", subs[0].StorageMethod)
	}
	if subs[0].Timestamp == "" {
		t.Error("expected a server-filled timestamp")
	}
	if subs[0].SubmittedAt != subs[0].Timestamp {
		t.Error("submitted_at should mirror timestamp")
	}
}

func TestMemoryCount(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := m.Insert(ctx, models.Submission{Name: "Alice", Email: "a@b.com", Answer: "hello world"}); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}

	count, err := m.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
}

func TestMemoryListNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := m.Insert(ctx, models.Submission{
			Name:      fmt.Sprintf("User%d", i),
			Email:     "a@b.com",
			Answer:    "hello world",
			Timestamp: fmt.Sprintf("2026-08-2%dT00:00:00.000000", i+1),
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		ids = append(ids, id)
	}

	subs, err := m.List(ctx, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	for i := range subs {
		if want := ids[len(ids)-1-i]; subs[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, subs[i].ID)
		}
	}
}

func TestMemoryListLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := m.Insert(ctx, models.Submission{Name: "Alice", Email: "a@b.com", Answer: "hello world"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	subs, err := m.List(ctx, 4)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) != 4 {
		t.Errorf("expected limit to cap results at 4, got %d", len(subs))
	}
}

func TestMemoryConcurrentAppend(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := m.Insert(ctx, models.Submission{Name: "Alice", Email: "a@b.com", Answer: "hello world"}); err != nil {
					t.Errorf("insert failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	count, err := m.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != workers*perWorker {
		t.Errorf("expected %d submissions, got %d", workers*perWorker, count)
	}
}
