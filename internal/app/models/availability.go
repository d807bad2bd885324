package models

// AvailabilitySpan is one row of GET /items/{id}/availability. Start and End
// are either plain dates or RFC3339 timestamps.
type AvailabilitySpan struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Type   string  `json:"type"`
	Status *string `json:"status,omitempty"`
	Label  *string `json:"label,omitempty"`
}
