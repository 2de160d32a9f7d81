// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/anytime-contest/cliparse"
	"github.com/danielhkuo/anytime-contest/handlers"
	"github.com/danielhkuo/anytime-contest/middleware"
	"github.com/danielhkuo/anytime-contest/storage"
)

func NewRouter(store *storage.Controller, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(submissionHandler.Health))

	// Submissions
	mux.HandleFunc("POST /submit", middleware.WithLogging(submissionHandler.Submit))
	mux.HandleFunc("OPTIONS /submit", submissionHandler.SubmitPreflight)
	mux.HandleFunc("GET /submissions/count", middleware.WithLogging(submissionHandler.Count))
	mux.HandleFunc("GET /submissions/backup", middleware.WithLogging(submissionHandler.Backup))

	// Root endpoint
	mux.HandleFunc("GET /{$}", submissionHandler.Root)

	return middleware.SecurityHeaders(middleware.CORS(mux, cfg))
}
