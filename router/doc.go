// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly NPS API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg, metrics.New(st))

Passing a nil *metrics.Metrics leaves /metrics unregistered.

# Endpoints

Health:

	GET /health

Survey (public):

	POST /responses - Submit a response
	GET  /responses - Recent responses, most recent first
	GET  /stats     - Totals, category percentages, NPS

Admin (requires X-Admin-Key when an admin salt is configured):

	GET    /export.csv - Download all responses as CSV
	DELETE /responses  - Clear all responses (needs ?confirm=true)

Observability:

	GET /metrics - Prometheus metrics
*/
package router
