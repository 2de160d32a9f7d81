// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/anytime-contest/cliparse"
	"github.com/danielhkuo/anytime-contest/middleware"
	"github.com/danielhkuo/anytime-contest/models"
	"github.com/danielhkuo/anytime-contest/storage"
	"github.com/danielhkuo/anytime-contest/validate"
)

const (
	apiVersion = "5.0.0"

	// DefaultBackupLimit caps how many submissions a backup listing returns.
	DefaultBackupLimit = 1000
)

type SubmissionHandler struct {
	store *storage.Controller
	cfg   cliparse.Config
}

func NewSubmissionHandler(store *storage.Controller, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{store: store, cfg: cfg}
}

// Root handles GET /
func (h *SubmissionHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.RootResponse{
		Message: "ANYTIME Contest API is running",
		Status:  "healthy",
		Version: apiVersion,
		Storage: h.store.Backend(),
	})
}

// Health handles GET /health
// Probes the selected backend with a lightweight read; any probe failure
// reports the database as disconnected but the endpoint itself stays 200.
func (h *SubmissionHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health probe failed", "backend", h.store.Backend(), "error", err)
		database = "disconnected"
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		Environment:   h.cfg.Environment,
		Database:      database,
		StorageMethod: h.store.Backend(),
		CORSOrigins:   h.cfg.CORSOrigins,
		Timestamp:     storage.ISOTime(time.Now()),
	})
}

// Submit handles POST /submit
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read request body", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	payload := validate.ParsePayload(r.Header.Get("Content-Type"), body)
	if h.cfg.Debug() {
		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		slog.Debug("submit payload received", "keys", keys)
	}

	sub, fieldErrs := validate.Submission(payload)
	if len(fieldErrs) > 0 {
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Detail: fieldErrs,
		})
		return
	}

	if sub.Timestamp == "" {
		sub.Timestamp = storage.ISOTime(time.Now())
	}

	id, backend, err := h.store.Insert(r.Context(), sub)
	if err != nil {
		slog.Error("submission insert failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("submission recorded", "submission_id", id, "backend", backend)

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionResponse{
		Success:      true,
		Message:      fmt.Sprintf("Submission recorded successfully using %s!", backend),
		SubmissionID: id,
	})
}

// SubmitPreflight handles OPTIONS /submit
func (h *SubmissionHandler) SubmitPreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Count handles GET /submissions/count
func (h *SubmissionHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, backend := h.store.Count(r.Context())

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{
		TotalSubmissions: count,
		StorageMethod:    backend,
		Timestamp:        storage.ISOTime(time.Now()),
	})
}

// Backup handles GET /submissions/backup
// Returns up to DefaultBackupLimit submissions, newest first.
func (h *SubmissionHandler) Backup(w http.ResponseWriter, r *http.Request) {
	subs, backend := h.store.List(r.Context(), DefaultBackupLimit)

	middleware.JSONResponse(w, http.StatusOK, models.BackupResponse{
		TotalSubmissions: len(subs),
		Submissions:      subs,
		StorageMethod:    backend,
		Timestamp:        storage.ISOTime(time.Now()),
	})
}
