// Package timeline lays out loan and reservation spans on a day grid.
//
// Everything here is pure: the same window and spans always produce the same
// grid, and inputs are never modified.
package timeline

import (
	"sort"
	"time"
)

// Packing selects the order in which spans are assigned to lanes.
type Packing int

const (
	// PackInputOrder assigns lanes in the order spans are given. It can use
	// more lanes than necessary for some orderings.
	PackInputOrder Packing = iota
	// PackSortedByStart sorts by clipped start (then clipped end) first,
	// which yields the minimum number of lanes.
	PackSortedByStart
)

type Options struct {
	Packing Packing
}

type Result struct {
	Spans     []PositionedSpan
	LaneCount int
}

// Normalize folds a span into whole days: [s, e) with s and e at midnight.
// An end carrying a time of day occupies that whole day, and every span
// covers at least one day.
func Normalize(span Span) (s, e time.Time) {
	s = StartOfDay(span.Start)
	e = StartOfDay(span.End)
	if !span.End.Equal(e) {
		e = AddDays(e, 1)
	}
	if !e.After(s) {
		e = AddDays(s, 1)
	}
	return s, e
}

// Layout positions spans inside the window using input-order lane packing.
func Layout(w Window, spans []Span) Result {
	return LayoutWithOptions(w, spans, Options{})
}

type clipped struct {
	span     Span
	from, to time.Time
	colStart int
	colEnd   int
}

func LayoutWithOptions(w Window, spans []Span, opts Options) Result {
	loc := w.Location()
	windowStart := StartOfDay(w.Start)
	windowEnd := AddDays(windowStart, w.Days)

	visible := make([]clipped, 0, len(spans))
	for _, span := range spans {
		local := span
		local.Start = span.Start.In(loc)
		local.End = span.End.In(loc)

		s, e := Normalize(local)
		if !e.After(windowStart) || !s.Before(windowEnd) {
			continue
		}

		from := s
		if from.Before(windowStart) {
			from = windowStart
		}
		to := e
		if to.After(windowEnd) {
			to = windowEnd
		}

		colStart := DaysBetween(windowStart, from)
		colEnd := DaysBetween(windowStart, to)
		if colEnd <= colStart {
			colEnd = colStart + 1
		}
		visible = append(visible, clipped{span: span, from: from, to: to, colStart: colStart, colEnd: colEnd})
	}

	if opts.Packing == PackSortedByStart {
		sort.SliceStable(visible, func(i, j int) bool {
			if !visible[i].from.Equal(visible[j].from) {
				return visible[i].from.Before(visible[j].from)
			}
			return visible[i].to.Before(visible[j].to)
		})
	}

	var laneEnds []time.Time
	positioned := make([]PositionedSpan, 0, len(visible))
	for _, c := range visible {
		lane := 0
		for lane < len(laneEnds) && laneEnds[lane].After(c.from) {
			lane++
		}
		if lane == len(laneEnds) {
			laneEnds = append(laneEnds, c.to)
		} else {
			laneEnds[lane] = c.to
		}
		positioned = append(positioned, PositionedSpan{
			Span:     c.span,
			ColStart: c.colStart,
			ColEnd:   c.colEnd,
			Lane:     lane,
		})
	}

	laneCount := len(laneEnds)
	if laneCount < 1 {
		laneCount = 1
	}
	return Result{Spans: positioned, LaneCount: laneCount}
}
