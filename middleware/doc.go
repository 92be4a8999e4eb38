// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /stats", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from the X-Request-ID header
or a fresh UUID, and is echoed back in the response.

# CORS Middleware

Enable cross-origin requests from the survey page:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Any origin is allowed, without credentials. Allows methods GET, POST,
DELETE, OPTIONS with headers Content-Type, X-Admin-Key, X-Confirm,
X-Request-ID. Preflight requests get 204.
Content-Disposition is exposed so browsers can read the export filename.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for request logs and the hashed submitter IP.
*/
package middleware
