package models

import "time"

type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}
