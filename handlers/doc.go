// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly NPS API.

# Handler Types

SurveyHandler serves the whole survey surface. It is created with the
response store, configuration, and optional metrics:

	surveyHandler := handlers.NewSurveyHandler(st, cfg, m)

The handler holds no selection state of its own; every submission
carries its score.

# Submitting

	POST /responses → SubmitResponse

The score is required and must be 0-10. Free-text answers are trimmed
and the timestamp is stamped server-side in the survey locale:

	en:    10/18/2026, 2:03:12 PM
	pt-BR: 18/10/2026, 14:03:12

# Reading

	GET /stats     → GetStats (nps.ComputeStats over every response)
	GET /responses → ListRecent (last RecentLimit rows, newest first)

# Exporting and Clearing

	GET /export.csv    → ExportCSV (404 when there is nothing to export)
	DELETE /responses  → ClearResponses (428 without confirmation)

With an admin salt configured, both require the X-Admin-Key header.
*/
package handlers
