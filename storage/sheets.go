// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"time"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/danielhkuo/anytime-contest/models"
)

// Sheets appends submissions as rows to a Google Sheet. The Sheets API has
// no efficient read-back for this layout, so count and list are defined
// against an in-process mirror of the rows this process appended.
type Sheets struct {
	svc        *sheets.Service
	sheetID    string
	sheetRange string
	mirror     *Memory
}

// NewSheets builds the Sheets client. No connectivity probe happens here;
// the first append discovers actual reachability.
func NewSheets(ctx context.Context, apiKey, sheetID, sheetRange string) (*Sheets, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, newError(models.BackendSheets, "init", err)
	}
	return &Sheets{
		svc:        svc,
		sheetID:    sheetID,
		sheetRange: sheetRange,
		mirror:     NewMemory(),
	}, nil
}

func (s *Sheets) Name() string { return models.BackendSheets }

func (s *Sheets) Insert(ctx context.Context, sub models.Submission) (string, error) {
	now := time.Now()
	if sub.ID == "" {
		sub.ID = NewSubmissionID(now)
	}
	if sub.Timestamp == "" {
		sub.Timestamp = ISOTime(now)
	}

	values := &sheets.ValueRange{
		Values: [][]interface{}{
			{sub.ID, sub.Name, sub.Email, sub.Answer, sub.Timestamp},
		},
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.sheetID, s.sheetRange, values).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", newError(models.BackendSheets, "append", err)
	}

	// Mirror only rows the sheet accepted, so reads reflect durable writes.
	sub.SubmittedAt = sub.Timestamp
	sub.StorageMethod = models.BackendSheets
	s.mirror.record(sub)

	return sub.ID, nil
}

func (s *Sheets) Count(ctx context.Context) (int, error) {
	return s.mirror.Count(ctx)
}

func (s *Sheets) List(ctx context.Context, limit int) ([]models.Submission, error) {
	return s.mirror.List(ctx, limit)
}

// Ping is a no-op: the API-key-only Sheets client has no cheap probe.
func (s *Sheets) Ping(ctx context.Context) error { return nil }
