// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly NPS API server.

Quickly NPS collects Net Promoter Score survey responses (a 0-10 score
plus four free-text answers and a role), keeps them in a single storage
slot, reports promoter/passive/detractor percentages and the NPS, and
exports everything as semicolon-delimited CSV.

# Starting the Server

With no configuration the server stores responses in ./data as JSON:

	go run .

Or with flags:

	go run . -p 3318 -t sqlite -d data/nps.db -locale pt-BR

# Configuration

All settings are optional except the PostgreSQL URL when -t postgres
is used:

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-t): file, sqlite, postgres, or memory (default: file)
  - DATABASE_URL (-d): store location
  - STORAGE_KEY (-k): slot key (default: ksa_nps_responses_v1)
  - SURVEY_LOCALE (-locale): en or pt-BR
  - ADMIN_KEY_SALT (-admin-salt): protects export and clear

A .env file in the working directory is loaded if present.

# Architecture

  - handlers: HTTP request handlers (submit, stats, recent, export, clear)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Response record, stats, request/response types
  - nps: Statistics aggregation
  - csvexport: CSV serialization
  - store: Response store and slot backends
  - db: SQL slot schema and connection setup
  - metrics: Prometheus metrics
  - auth: Admin keys and IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
