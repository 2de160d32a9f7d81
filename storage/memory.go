// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/anytime-contest/models"
)

// Memory is the process-lifetime, append-only store. It backs the fallback
// path of every other adapter and is the store of last resort at selection
// time. Data is lost on restart; that is accepted behavior.
type Memory struct {
	mu   sync.Mutex
	subs []models.Submission
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Name() string { return models.BackendMemory }

func (m *Memory) Insert(ctx context.Context, sub models.Submission) (string, error) {
	now := time.Now()
	if sub.ID == "" {
		sub.ID = NewSubmissionID(now)
	}
	if sub.Timestamp == "" {
		sub.Timestamp = ISOTime(now)
	}
	sub.SubmittedAt = sub.Timestamp
	sub.StorageMethod = models.BackendMemory
	m.record(sub)
	return sub.ID, nil
}

// record appends a fully populated submission. The sheets adapter uses it
// to mirror rows it appended, keeping their storage_method tag intact.
func (m *Memory) record(sub models.Submission) {
	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs), nil
}

func (m *Memory) List(ctx context.Context, limit int) ([]models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.subs)
	if limit > 0 && limit < n {
		n = limit
	}

	// Newest first: appends happen in timestamp order.
	out := make([]models.Submission, 0, n)
	for i := len(m.subs) - 1; i >= len(m.subs)-n; i-- {
		out = append(out, m.subs[i])
	}
	return out, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }
