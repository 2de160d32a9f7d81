// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/anytime-contest/db"
	"github.com/danielhkuo/anytime-contest/models"
)

const (
	poolIdleTimeout    = 300 * time.Second
	poolAcquireTimeout = 30 * time.Second
)

// Relational persists submissions through a bounded database/sql pool.
// The driver is either lib/pq ("postgres") or modernc ("sqlite"); both
// accept $n placeholders, so the statements below are shared.
type Relational struct {
	db *sql.DB
}

// NewRelational opens a pool, verifies connectivity, and ensures the
// submissions table exists.
func NewRelational(driver, dsn string, maxOpen int) (*Relational, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, newError(models.BackendPostgres, "open", err)
	}
	if maxOpen < 1 {
		maxOpen = 1
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetConnMaxIdleTime(poolIdleTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), poolAcquireTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, newError(models.BackendPostgres, "ping", err)
	}
	if err := db.CreateSchema(conn, driver); err != nil {
		conn.Close()
		return nil, newError(models.BackendPostgres, "schema", err)
	}

	return &Relational{db: conn}, nil
}

// DriverFor maps a configured database type to a registered driver name.
func DriverFor(databaseType string) string {
	if databaseType == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}

func (r *Relational) Name() string { return models.BackendPostgres }

func (r *Relational) Insert(ctx context.Context, sub models.Submission) (string, error) {
	now := time.Now()
	if sub.ID == "" {
		sub.ID = NewSubmissionID(now)
	}
	if sub.Timestamp == "" {
		sub.Timestamp = ISOTime(now)
	}

	ctx, cancel := context.WithTimeout(ctx, poolAcquireTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (id, name, email, answer, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`, sub.ID, sub.Name, sub.Email, sub.Answer, sub.Timestamp)
	if err != nil {
		return "", newError(models.BackendPostgres, "insert", err)
	}

	return sub.ID, nil
}

func (r *Relational) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, poolAcquireTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&count)
	if err != nil {
		return 0, newError(models.BackendPostgres, "count", err)
	}
	return count, nil
}

func (r *Relational) List(ctx context.Context, limit int) ([]models.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, poolAcquireTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, answer, timestamp
		FROM submissions
		ORDER BY timestamp DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, newError(models.BackendPostgres, "list", err)
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Answer, &sub.Timestamp); err != nil {
			return nil, newError(models.BackendPostgres, "scan", err)
		}
		sub.SubmittedAt = sub.Timestamp
		sub.StorageMethod = models.BackendPostgres
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, newError(models.BackendPostgres, "list", err)
	}

	return subs, nil
}

func (r *Relational) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, poolAcquireTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, "SELECT 1"); err != nil {
		return newError(models.BackendPostgres, "ping", err)
	}
	return nil
}

func (r *Relational) Close() error { return r.db.Close() }
