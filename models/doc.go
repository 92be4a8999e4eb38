// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the survey record, statistics, and API types.

# Domain Types

  - Response: one survey answer (score 0-10, four free-text answers,
    role, locale-formatted timestamp)
  - Stats: total count, promoter/passive/detractor percentages, NPS
  - NPSValue: NPS integer or the "no data" sentinel
  - ResponseRow: a response with its 1-based row number

# Persisted Layout

A Response marshals to the layout stored in the slot:

	{"score":9,"like":"","help":"","problems":"","improve":"","role":"","ts":"10/18/2026, 2:03:12 PM"}

# NPS Sentinel

With no responses the NPS is undefined rather than zero. NPSValue
marshals to the string "—" in that case:

	{"total":0,"promoters":0,"passives":0,"detractors":0,"nps":"—"}

# Request Types

  - SubmitResponseRequest: score (required), like, help, problems,
    improve, role

# Response Types

  - SubmitResponseResponse: stored response, fresh stats
  - RecentResponsesResponse: total, most-recent-first rows
  - ClearResponse: cleared flag, fresh stats
  - ErrorResponse: error, message
*/
package models
