// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-nps/auth"
	"github.com/danielhkuo/quickly-nps/cliparse"
	"github.com/danielhkuo/quickly-nps/csvexport"
	"github.com/danielhkuo/quickly-nps/metrics"
	"github.com/danielhkuo/quickly-nps/middleware"
	"github.com/danielhkuo/quickly-nps/models"
	"github.com/danielhkuo/quickly-nps/nps"
	"github.com/danielhkuo/quickly-nps/store"
)

// Action names used in metrics
const (
	ActionSubmit = "submit"
	ActionExport = "export"
	ActionClear  = "clear"
)

// ConfirmHeader must be set to ConfirmValue (or ?confirm=true) to clear
const (
	ConfirmHeader = "X-Confirm"
	ConfirmValue  = "clear"
)

const (
	maxBodyBytes = 64 << 10
	maxListLimit = 1000
)

// Timestamp layouts per survey locale
var timestampLayouts = map[string]string{
	csvexport.LocaleEN:   "1/2/2006, 3:04:05 PM",
	csvexport.LocalePTBR: "02/01/2006, 15:04:05",
}

// FormatTimestamp renders t the way the survey locale displays dates
func FormatTimestamp(t time.Time, locale string) string {
	layout, ok := timestampLayouts[locale]
	if !ok {
		layout = timestampLayouts[csvexport.LocaleEN]
	}
	return t.Format(layout)
}

type SurveyHandler struct {
	store   *store.Store
	cfg     cliparse.Config
	csv     *csvexport.Serializer
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewSurveyHandler(st *store.Store, cfg cliparse.Config, m *metrics.Metrics) *SurveyHandler {
	return &SurveyHandler{
		store:   st,
		cfg:     cfg,
		csv:     csvexport.NewSerializer(cfg.Locale, cfg.CSVHeader),
		metrics: m,
		now:     time.Now,
	}
}

// SubmitResponse handles POST /responses
func (h *SurveyHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.RecordAction(ActionSubmit, metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Score == nil {
		h.metrics.RecordAction(ActionSubmit, metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please choose a score from 0 to 10")
		return
	}
	if *req.Score < models.MinScore || *req.Score > models.MaxScore {
		h.metrics.RecordAction(ActionSubmit, metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "score must be between 0 and 10")
		return
	}

	resp := models.Response{
		Score:    *req.Score,
		Like:     strings.TrimSpace(req.Like),
		Help:     strings.TrimSpace(req.Help),
		Problems: strings.TrimSpace(req.Problems),
		Improve:  strings.TrimSpace(req.Improve),
		Role:     strings.TrimSpace(req.Role),
		TS:       FormatTimestamp(h.now(), h.cfg.Locale),
	}

	list, err := h.store.Append(r.Context(), resp)
	if err != nil {
		h.metrics.RecordAction(ActionSubmit, metrics.OutcomeError)
		slog.Error("failed to store response", "error", err, "key", h.store.Key())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}
	h.metrics.RecordAction(ActionSubmit, metrics.OutcomeOK)

	slog.Info("response recorded",
		"key", h.store.Key(),
		"category", nps.Categorize(resp.Score),
		"total", len(list),
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.ipSalt()),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		Response: resp,
		Stats:    nps.ComputeStats(list),
		Message:  "Thank you! Response recorded.",
	})
}

// GetStats handles GET /stats
func (h *SurveyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, nps.ComputeStats(h.store.LoadAll(r.Context())))
}

// ListRecent handles GET /responses
// Returns the most recent responses first, capped at RecentLimit unless
// ?limit= asks for another positive number.
func (h *SurveyHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.RecentLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxListLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
			return
		}
		limit = n
	}

	list := h.store.LoadAll(r.Context())

	middleware.JSONResponse(w, http.StatusOK, models.RecentResponsesResponse{
		Total: len(list),
		Rows:  store.Recent(list, limit),
	})
}

// ExportCSV handles GET /export.csv
func (h *SurveyHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r, ActionExport) {
		return
	}

	list := h.store.LoadAll(r.Context())
	if len(list) == 0 {
		h.metrics.RecordAction(ActionExport, metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusNotFound, "No responses to export")
		return
	}

	body := h.csv.Serialize(list)

	w.Header().Set("Content-Type", csvexport.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.cfg.ExportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write export", "error", err)
		return
	}

	h.metrics.RecordAction(ActionExport, metrics.OutcomeOK)
	slog.Info("responses exported", "key", h.store.Key(), "count", len(list))
}

// ClearResponses handles DELETE /responses
// Requires ?confirm=true or X-Confirm: clear before deleting anything.
func (h *SurveyHandler) ClearResponses(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r, ActionClear) {
		return
	}

	if r.URL.Query().Get("confirm") != "true" && r.Header.Get(ConfirmHeader) != ConfirmValue {
		h.metrics.RecordAction(ActionClear, metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusPreconditionRequired,
			"Clearing all responses cannot be undone; repeat with ?confirm=true")
		return
	}

	if err := h.store.Clear(r.Context()); err != nil {
		h.metrics.RecordAction(ActionClear, metrics.OutcomeError)
		slog.Error("failed to clear responses", "error", err, "key", h.store.Key())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear responses")
		return
	}
	h.metrics.RecordAction(ActionClear, metrics.OutcomeOK)

	slog.Warn("responses cleared", "key", h.store.Key())

	middleware.JSONResponse(w, http.StatusOK, models.ClearResponse{
		Cleared: true,
		Stats:   nps.ComputeStats(h.store.LoadAll(r.Context())),
	})
}

// requireAdmin checks X-Admin-Key when an admin salt is configured
func (h *SurveyHandler) requireAdmin(w http.ResponseWriter, r *http.Request, action string) bool {
	if h.cfg.AdminKeySalt == "" {
		return true
	}

	err := auth.ValidateAdminKey(h.store.Key(), r.Header.Get(auth.AdminKeyHeader), h.cfg.AdminKeySalt)
	if err == nil {
		return true
	}

	h.metrics.RecordAction(action, metrics.OutcomeRejected)
	if errors.Is(err, auth.ErrMissingAdminKey) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
	} else {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
	}
	return false
}

func (h *SurveyHandler) ipSalt() string {
	if h.cfg.AdminKeySalt != "" {
		return h.cfg.AdminKeySalt
	}
	return h.store.Key()
}
