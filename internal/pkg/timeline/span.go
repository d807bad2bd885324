package timeline

import "time"

type SpanType string

const (
	SpanTypeLoan        SpanType = "LOAN"
	SpanTypeReservation SpanType = "RESERVATION"
)

type SpanStatus string

const (
	SpanStatusApproved  SpanStatus = "APPROVED"
	SpanStatusPending   SpanStatus = "PENDING"
	SpanStatusCancelled SpanStatus = "CANCELLED"
	SpanStatusReturned  SpanStatus = "RETURNED"
)

// Span is a loan or reservation interval as delivered by the backend.
// End is exclusive once normalized.
type Span struct {
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Type   SpanType   `json:"type"`
	Status SpanStatus `json:"status,omitempty"`
	Label  string     `json:"label,omitempty"`
}

// PositionedSpan places a span on the grid: columns [ColStart, ColEnd) in
// lane Lane.
type PositionedSpan struct {
	Span     Span `json:"span"`
	ColStart int  `json:"col_start"`
	ColEnd   int  `json:"col_end"`
	Lane     int  `json:"lane"`
}

// BarClass returns the css class pair used to render a span.
func BarClass(s Span) string {
	if s.Type == SpanTypeLoan {
		return "bar bar-loan"
	}
	switch s.Status {
	case SpanStatusApproved:
		return "bar bar-res-approve"
	case SpanStatusPending:
		return "bar bar-res-pending"
	case SpanStatusCancelled:
		return "bar bar-res-cancel"
	default:
		return "bar bar-res"
	}
}
