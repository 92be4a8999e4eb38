// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-nps/cliparse"
	"github.com/danielhkuo/quickly-nps/handlers"
	"github.com/danielhkuo/quickly-nps/metrics"
	"github.com/danielhkuo/quickly-nps/middleware"
	"github.com/danielhkuo/quickly-nps/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	surveyHandler := handlers.NewSurveyHandler(st, cfg, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey operations
	mux.HandleFunc("POST /responses", middleware.WithLogging(surveyHandler.SubmitResponse))
	mux.HandleFunc("GET /responses", middleware.WithLogging(surveyHandler.ListRecent))
	mux.HandleFunc("GET /stats", middleware.WithLogging(surveyHandler.GetStats))

	// Admin operations (X-Admin-Key when a salt is configured)
	mux.HandleFunc("GET /export.csv", middleware.WithLogging(surveyHandler.ExportCSV))
	mux.HandleFunc("DELETE /responses", middleware.WithLogging(surveyHandler.ClearResponses))

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-nps API v1"))
	})

	return mux
}
