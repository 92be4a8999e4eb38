package models

import (
	"encoding/json"
	"strconv"
)

// Score bounds for a single response
const (
	MinScore = 0
	MaxScore = 10
)

// NoData is shown in place of an NPS value when there are no responses
const NoData = "—"

// Domain types

// Response is one submitted survey answer. The JSON layout is the
// persisted layout of the storage slot.
type Response struct {
	Score    int    `json:"score"`
	Like     string `json:"like"`
	Help     string `json:"help"`
	Problems string `json:"problems"`
	Improve  string `json:"improve"`
	Role     string `json:"role"`
	TS       string `json:"ts"` // locale-formatted creation time
}

// NPSValue is an NPS score in [-100, 100] or the "no data" sentinel.
type NPSValue struct {
	Value int
	Valid bool
}

// NewNPS returns a valid NPS value
func NewNPS(v int) NPSValue {
	return NPSValue{Value: v, Valid: true}
}

func (n NPSValue) String() string {
	if !n.Valid {
		return NoData
	}
	return strconv.Itoa(n.Value)
}

func (n NPSValue) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal(NoData)
	}
	return json.Marshal(n.Value)
}

func (n *NPSValue) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*n = NewNPS(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = NPSValue{}
	return nil
}

// Stats is the aggregate over the whole response collection.
// Percentages are rounded independently and need not sum to 100.
type Stats struct {
	Total          int      `json:"total"`
	Promoters      int      `json:"promoters"`
	Passives       int      `json:"passives"`
	Detractors     int      `json:"detractors"`
	NPS            NPSValue `json:"nps"`
	PromoterCount  int      `json:"promoter_count"`
	PassiveCount   int      `json:"passive_count"`
	DetractorCount int      `json:"detractor_count"`
}

// ResponseRow is a response with its 1-based position in the collection
type ResponseRow struct {
	Number int `json:"number"`
	Response
}

// Request types

// score is a pointer so a missing score can be told apart from 0
type SubmitResponseRequest struct {
	Score    *int   `json:"score"`
	Like     string `json:"like"`
	Help     string `json:"help"`
	Problems string `json:"problems"`
	Improve  string `json:"improve"`
	Role     string `json:"role"`
}

// Response types

type SubmitResponseResponse struct {
	Response Response `json:"response"`
	Stats    Stats    `json:"stats"`
	Message  string   `json:"message"`
}

type RecentResponsesResponse struct {
	Total int           `json:"total"`
	Rows  []ResponseRow `json:"rows"`
}

type ClearResponse struct {
	Cleared bool  `json:"cleared"`
	Stats   Stats `json:"stats"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
