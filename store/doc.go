// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the survey response collection.

# Slots

The whole collection lives under one key in a Slot, JSON-encoded:

  - MemorySlot: process memory (tests, throwaway runs)
  - FileSlot: one <key>.json file per key, replaced atomically
  - SQLSlot: a kv_slot row in SQLite or PostgreSQL

# Store

	st := store.New(store.NewSQLSlot(conn), store.DefaultKey)
	list, err := st.Append(ctx, resp)
	all := st.LoadAll(ctx)
	err = st.Clear(ctx)

LoadAll never fails: a missing, unreadable, or corrupt slot is treated
as an empty collection and logged. Append and Clear return write errors.

Append is a read-modify-write of the full collection. It is serialized
inside one process; separate processes sharing a slot are last write
wins.

# Codec

EncodeResponses and DecodeResponses are the serialization boundary.
DecodeResponses maps any failure to an empty collection, so swapping the
slot backend never touches aggregation code.
*/
package store
