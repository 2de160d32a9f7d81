// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/anytime-contest/cliparse"
	"github.com/danielhkuo/anytime-contest/storage"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Environment:       "development",
		SheetRange:        "Sheet1!A:E",
		DatabaseType:      "sqlite",
		PoolMaxSize:       1,
		CORSOrigins:       []string{"http://localhost:3000"},
		CORSOriginPattern: `https://.*\.vercel\.app`,
		Host:              "127.0.0.1",
		Port:              8000,
	}
}

// NewMemoryController builds a controller running purely on in-memory
// storage, the common fixture for handler and router tests.
func NewMemoryController() *storage.Controller {
	memory := storage.NewMemory()
	return storage.NewController(memory, memory)
}

// SetupTestStore creates a relational adapter backed by a throwaway sqlite
// database so storage tests need no external service.
func SetupTestStore(t *testing.T) *storage.Relational {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewRelational("sqlite", dsn, 1)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
