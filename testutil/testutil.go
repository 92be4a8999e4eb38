// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-nps/cliparse"
	"github.com/danielhkuo/quickly-nps/csvexport"
	"github.com/danielhkuo/quickly-nps/db"
	"github.com/danielhkuo/quickly-nps/models"
	"github.com/danielhkuo/quickly-nps/store"
)

// TestStorageKey is the slot key used by test stores
const TestStorageKey = "test_nps_responses"

// SetupTestStore creates a store backed by a fresh in-memory SQLite database
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return store.New(store.NewSQLSlot(conn), TestStorageKey)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		StoreType:      cliparse.StoreSQLite,
		DatabaseURL:    ":memory:",
		StorageKey:     TestStorageKey,
		Locale:         csvexport.LocaleEN,
		RecentLimit:    cliparse.DefaultRecentLimit,
		ExportFilename: csvexport.DefaultFilename,
	}
}

// SeedResponses appends one response per score and returns the stored collection
func SeedResponses(t *testing.T, st *store.Store, scores ...int) []models.Response {
	t.Helper()

	var list []models.Response
	for i, score := range scores {
		var err error
		list, err = st.Append(context.Background(), models.Response{
			Score: score,
			Like:  "like " + string(rune('a'+i%26)),
			Role:  "tester",
			TS:    "10/18/2026, 2:03:12 PM",
		})
		if err != nil {
			t.Fatalf("Failed to seed response: %v", err)
		}
	}
	return list
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

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
