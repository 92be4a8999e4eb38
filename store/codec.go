// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/quickly-nps/models"
)

// EncodeResponses serializes the full collection as a JSON array
func EncodeResponses(responses []models.Response) ([]byte, error) {
	if responses == nil {
		responses = []models.Response{}
	}
	data, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("failed to encode responses: %w", err)
	}
	return data, nil
}

// DecodeResponses parses a JSON array of responses.
// Empty, corrupt, or non-array input yields an empty collection.
func DecodeResponses(data []byte) []models.Response {
	responses, err := decodeResponses(data)
	if err != nil {
		return []models.Response{}
	}
	return responses
}

// decodeResponses is DecodeResponses with the failure reason kept for logging
func decodeResponses(data []byte) ([]models.Response, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []models.Response{}, nil
	}

	var responses []models.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to decode responses: %w", err)
	}
	if responses == nil {
		responses = []models.Response{}
	}
	return responses, nil
}
