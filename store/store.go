// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/quickly-nps/models"
)

// DefaultKey is the slot key holding the response collection
const DefaultKey = "ksa_nps_responses_v1"

// Store keeps the ordered response collection in a single slot.
// Records are only ever appended or cleared together.
type Store struct {
	slot Slot
	key  string
	// serializes read-modify-write within this process
	mu sync.Mutex
}

// New creates a store over slot. An empty key selects DefaultKey.
func New(slot Slot, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{slot: slot, key: key}
}

// Key returns the slot key
func (s *Store) Key() string {
	return s.key
}

// LoadAll returns every stored response in insertion order.
// Read and decode failures yield an empty collection.
func (s *Store) LoadAll(ctx context.Context) []models.Response {
	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		return []models.Response{}
	}
	if err != nil {
		slog.Warn("failed to read responses, treating as empty", "key", s.key, "error", err)
		return []models.Response{}
	}

	responses, err := decodeResponses(data)
	if err != nil {
		slog.Warn("corrupt response data, treating as empty", "key", s.key, "error", err)
		return []models.Response{}
	}
	return responses
}

// Append adds r after the existing responses, writes the full collection
// back, and returns it.
func (s *Store) Append(ctx context.Context, r models.Response) ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses, err := s.loadForWrite(ctx)
	if err != nil {
		return nil, err
	}
	responses = append(responses, r)

	data, err := EncodeResponses(responses)
	if err != nil {
		return nil, err
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		return nil, fmt.Errorf("failed to save responses: %w", err)
	}
	return responses, nil
}

// loadForWrite reads the collection an Append builds on. A missing or
// corrupt payload starts a fresh list; any other read error is returned
// so a failed read never overwrites stored responses.
func (s *Store) loadForWrite(ctx context.Context) ([]models.Response, error) {
	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		return []models.Response{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}

	responses, err := decodeResponses(data)
	if err != nil {
		slog.Warn("corrupt response data, starting a new collection", "key", s.key, "error", err)
		return []models.Response{}, nil
	}
	return responses, nil
}

// Clear removes all stored responses
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear responses: %w", err)
	}
	return nil
}

// Recent returns the last n responses, most recent first, numbered by
// their 1-based position in the full collection. n <= 0 means no cap.
func Recent(responses []models.Response, n int) []models.ResponseRow {
	start := 0
	if n > 0 && len(responses) > n {
		start = len(responses) - n
	}

	rows := make([]models.ResponseRow, 0, len(responses)-start)
	for i := len(responses) - 1; i >= start; i-- {
		rows = append(rows, models.ResponseRow{
			Number:   i + 1,
			Response: responses[i],
		})
	}
	return rows
}
