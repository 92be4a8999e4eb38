// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the destructive survey actions.

# Admin Keys

When an admin salt is configured, export and clear require an admin key
in the X-Admin-Key header. The key is an HMAC-SHA256 of the storage key:

	adminKey := auth.GenerateAdminKey(storageKey, salt)
	err := auth.ValidateAdminKey(storageKey, adminKey, salt)

The key is URL-safe base64 encoded without padding. It is deterministic,
so nothing has to be stored; the server prints it once at startup.

# IP Hashing

Submissions are logged with a salted hash of the client IP instead of
the address itself:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
