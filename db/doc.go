// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL backend of the response slot and creates its schema.

# Opening

	conn, err := db.Open(db.TypeSQLite, "data/nps.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

Open pings the database and runs CreateSchema. SQLite connections get
WAL journaling, a 10s busy timeout, and a single open connection.

# Schema Creation

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS.

# Tables

  - kv_slot: one row per slot key; payload holds the JSON-encoded
    response collection
*/
package db
