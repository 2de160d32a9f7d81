// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/supabase-community/postgrest-go"
	supabase "github.com/supabase-community/supabase-go"

	"github.com/danielhkuo/anytime-contest/models"
)

const submissionsTable = "submissions"

// Supabase persists submissions through the hosted Supabase REST API.
type Supabase struct {
	client *supabase.Client
}

// NewSupabase constructs the client. This does not touch the network;
// construction fails only on unusable url/key.
func NewSupabase(url, key string) (*Supabase, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, newError(models.BackendSupabase, "init", err)
	}
	return &Supabase{client: client}, nil
}

func (s *Supabase) Name() string { return models.BackendSupabase }

func (s *Supabase) Insert(ctx context.Context, sub models.Submission) (string, error) {
	now := time.Now()
	if sub.ID == "" {
		sub.ID = NewSubmissionID(now)
	}
	if sub.Timestamp == "" {
		sub.Timestamp = ISOTime(now)
	}

	row := map[string]string{
		"id":        sub.ID,
		"name":      sub.Name,
		"email":     sub.Email,
		"answer":    sub.Answer,
		"timestamp": sub.Timestamp,
	}

	data, _, err := s.client.From(submissionsTable).
		Insert(row, false, "", "representation", "exact").
		ExecuteWithContext(ctx)
	if err != nil {
		return "", newError(models.BackendSupabase, "insert", err)
	}
	// Supabase reports success with an empty representation when the write
	// did not land; treat that as a failure rather than fabricating an id.
	if len(data) == 0 || string(data) == "[]" {
		return "", newError(models.BackendSupabase, "insert", errors.New("no rows returned"))
	}

	return sub.ID, nil
}

func (s *Supabase) Count(ctx context.Context) (int, error) {
	_, count, err := s.client.From(submissionsTable).
		Select("id", "exact", true).
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, newError(models.BackendSupabase, "count", err)
	}
	return int(count), nil
}

func (s *Supabase) List(ctx context.Context, limit int) ([]models.Submission, error) {
	data, _, err := s.client.From(submissionsTable).
		Select("*", "exact", false).
		Order("timestamp", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, newError(models.BackendSupabase, "list", err)
	}

	subs := []models.Submission{}
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, newError(models.BackendSupabase, "decode", err)
	}
	for i := range subs {
		subs[i].SubmittedAt = subs[i].Timestamp
		subs[i].StorageMethod = models.BackendSupabase
	}

	return subs, nil
}

func (s *Supabase) Ping(ctx context.Context) error {
	_, _, err := s.client.From(submissionsTable).
		Select("id", "exact", true).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return newError(models.BackendSupabase, "ping", err)
	}
	return nil
}
