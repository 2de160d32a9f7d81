// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"io"
	"log/slog"

	"github.com/danielhkuo/anytime-contest/cliparse"
	"github.com/danielhkuo/anytime-contest/models"
)

// Controller owns the startup storage selection and the per-call fallback
// to memory. The selection is immutable after construction; to re-evaluate
// it an operator restarts the process.
type Controller struct {
	active Adapter
	memory *Memory
}

// NewController wires an explicit adapter over a shared memory fallback.
// Select is the production constructor; this one exists for tests and for
// callers that build their own adapter.
func NewController(active Adapter, memory *Memory) *Controller {
	if active == nil {
		active = memory
	}
	return &Controller{active: active, memory: memory}
}

// Select chooses the authoritative adapter from configuration and
// credential presence. A backend is only attempted when it is the
// configured one and its credentials are present; any construction failure
// is logged and selection degrades to memory. Selection never fails.
func Select(ctx context.Context, cfg cliparse.Config) *Controller {
	memory := NewMemory()

	switch cfg.StorageBackend {
	case models.BackendSupabase:
		if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
			adapter, err := NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
			if err == nil {
				slog.Info("storage selected", "backend", models.BackendSupabase)
				return NewController(adapter, memory)
			}
			slog.Warn("supabase initialization failed", "error", err)
		}
	case models.BackendSheets:
		if cfg.SheetsAPIKey != "" && cfg.SheetID != "" {
			adapter, err := NewSheets(ctx, cfg.SheetsAPIKey, cfg.SheetID, cfg.SheetRange)
			if err == nil {
				slog.Info("storage selected", "backend", models.BackendSheets)
				return NewController(adapter, memory)
			}
			slog.Warn("sheets initialization failed", "error", err)
		}
	case models.BackendPostgres:
		if cfg.DatabaseURL != "" {
			adapter, err := NewRelational(DriverFor(cfg.DatabaseType), cfg.DatabaseURL, cfg.PoolMaxSize)
			if err == nil {
				slog.Info("storage selected", "backend", models.BackendPostgres, "driver", DriverFor(cfg.DatabaseType))
				return NewController(adapter, memory)
			}
			slog.Warn("postgres initialization failed", "error", err)
		}
	}

	slog.Warn("no durable storage backend available, using in-memory storage")
	return NewController(memory, memory)
}

// Backend returns the selected backend's name.
func (c *Controller) Backend() string { return c.active.Name() }

// Insert writes through the selected adapter. On any adapter failure the
// same record is retried once through the memory store, so the caller
// still gets a success. The returned backend name is the one that actually
// wrote the record, not necessarily the selected one.
func (c *Controller) Insert(ctx context.Context, sub models.Submission) (string, string, error) {
	id, err := c.active.Insert(ctx, sub)
	if err == nil {
		return id, c.active.Name(), nil
	}

	slog.Error("storage insert failed, falling back to memory",
		"backend", c.active.Name(),
		"error", err,
	)

	id, err = c.memory.Insert(ctx, sub)
	if err != nil {
		return "", "", err
	}
	return id, c.memory.Name(), nil
}

// Count reads from the selected adapter. Adapter failure is soft: the
// memory view (possibly empty or partial) is served instead.
func (c *Controller) Count(ctx context.Context) (int, string) {
	count, err := c.active.Count(ctx)
	if err == nil {
		return count, c.active.Name()
	}

	slog.Error("storage count failed, serving memory view",
		"backend", c.active.Name(),
		"error", err,
	)
	count, _ = c.memory.Count(ctx)
	return count, c.memory.Name()
}

// List reads up to limit submissions, newest first, with the same
// soft-failure policy as Count.
func (c *Controller) List(ctx context.Context, limit int) ([]models.Submission, string) {
	subs, err := c.active.List(ctx, limit)
	if err == nil {
		return subs, c.active.Name()
	}

	slog.Error("storage list failed, serving memory view",
		"backend", c.active.Name(),
		"error", err,
	)
	subs, _ = c.memory.List(ctx, limit)
	return subs, c.memory.Name()
}

// Ping probes the selected adapter with a lightweight read.
func (c *Controller) Ping(ctx context.Context) error {
	return c.active.Ping(ctx)
}

// Close releases the selected adapter's resources, if it holds any.
func (c *Controller) Close() error {
	if closer, ok := c.active.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
