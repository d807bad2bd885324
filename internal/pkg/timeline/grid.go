package timeline

import "time"

// Grid is the full derived view of one window: header cells, bars and the
// today marker. It is rebuilt from scratch on every input change.
type Grid struct {
	Window      Window
	Days        []DayCell
	Spans       []PositionedSpan
	LaneCount   int
	TodayColumn int
	HasToday    bool
}

type GridOptions struct {
	Locale  string
	Packing Packing
	Now     time.Time
}

func BuildGrid(w Window, spans []Span, opts GridOptions) Grid {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	layout := LayoutWithOptions(w, spans, Options{Packing: opts.Packing})
	col, ok := TodayColumnAt(w, now)
	return Grid{
		Window:      w,
		Days:        BuildDayCells(w, opts.Locale),
		Spans:       layout.Spans,
		LaneCount:   layout.LaneCount,
		TodayColumn: col,
		HasToday:    ok,
	}
}
