package timeline

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	t.Run("whole days keep exclusive end", func(t *testing.T) {
		s, e := Normalize(Span{Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 3, 0, 0)})
		assert.Equal(t, date(2024, 1, 1, 0, 0), s)
		assert.Equal(t, date(2024, 1, 3, 0, 0), e)
	})

	t.Run("time of day on end rounds up", func(t *testing.T) {
		s, e := Normalize(Span{Start: date(2024, 1, 2, 9, 0), End: date(2024, 1, 2, 17, 0)})
		assert.Equal(t, date(2024, 1, 2, 0, 0), s)
		assert.Equal(t, date(2024, 1, 3, 0, 0), e)
	})

	t.Run("sub-second end rounds up", func(t *testing.T) {
		end := time.Date(2024, 1, 2, 0, 0, 0, 1, time.UTC)
		_, e := Normalize(Span{Start: date(2024, 1, 1, 0, 0), End: end})
		assert.Equal(t, date(2024, 1, 3, 0, 0), e)
	})

	t.Run("inverted range covers one day", func(t *testing.T) {
		s, e := Normalize(Span{Start: date(2024, 1, 5, 0, 0), End: date(2024, 1, 2, 0, 0)})
		assert.Equal(t, date(2024, 1, 5, 0, 0), s)
		assert.Equal(t, date(2024, 1, 6, 0, 0), e)
	})

	t.Run("zero width covers one day", func(t *testing.T) {
		s, e := Normalize(Span{Start: date(2024, 1, 5, 0, 0), End: date(2024, 1, 5, 0, 0)})
		assert.Equal(t, AddDays(s, 1), e)
	})

	t.Run("idempotent", func(t *testing.T) {
		spans := []Span{
			{Start: date(2024, 1, 2, 9, 0), End: date(2024, 1, 2, 17, 0)},
			{Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 9, 0, 0)},
			{Start: date(2024, 3, 1, 23, 59), End: date(2024, 2, 1, 1, 0)},
		}
		for _, span := range spans {
			s1, e1 := Normalize(span)
			s2, e2 := Normalize(Span{Start: s1, End: e1})
			assert.Equal(t, s1, s2)
			assert.Equal(t, e1, e2)
		}
	})
}

func TestLayout_Scenarios(t *testing.T) {
	window := NewWindow(date(2024, 1, 1, 0, 0), 7)

	t.Run("loan over two whole days", func(t *testing.T) {
		result := Layout(window, []Span{
			{Type: SpanTypeLoan, Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 3, 0, 0)},
		})
		require.Len(t, result.Spans, 1)
		assert.Equal(t, 0, result.Spans[0].ColStart)
		assert.Equal(t, 2, result.Spans[0].ColEnd)
		assert.Equal(t, 0, result.Spans[0].Lane)
		assert.Equal(t, 1, result.LaneCount)
	})

	t.Run("pending reservation within a day", func(t *testing.T) {
		result := Layout(window, []Span{
			{Type: SpanTypeReservation, Status: SpanStatusPending, Start: date(2024, 1, 2, 9, 0), End: date(2024, 1, 2, 17, 0)},
		})
		require.Len(t, result.Spans, 1)
		assert.Equal(t, 1, result.Spans[0].ColStart)
		assert.Equal(t, 2, result.Spans[0].ColEnd)
	})

	t.Run("identical spans use two lanes", func(t *testing.T) {
		span := Span{Type: SpanTypeLoan, Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 3, 0, 0)}
		result := Layout(window, []Span{span, span})
		require.Len(t, result.Spans, 2)
		assert.Equal(t, 0, result.Spans[0].Lane)
		assert.Equal(t, 1, result.Spans[1].Lane)
		assert.Equal(t, 2, result.LaneCount)
	})

	t.Run("span before window is dropped", func(t *testing.T) {
		result := Layout(window, []Span{
			{Type: SpanTypeLoan, Start: date(2023, 12, 20, 0, 0), End: date(2024, 1, 1, 0, 0)},
		})
		assert.Empty(t, result.Spans)
		assert.Equal(t, 1, result.LaneCount)
	})

	t.Run("span after window is dropped", func(t *testing.T) {
		result := Layout(window, []Span{
			{Type: SpanTypeLoan, Start: date(2024, 1, 8, 0, 0), End: date(2024, 1, 10, 0, 0)},
		})
		assert.Empty(t, result.Spans)
	})

	t.Run("span covering window is clipped", func(t *testing.T) {
		result := Layout(window, []Span{
			{Type: SpanTypeReservation, Start: date(2023, 12, 1, 0, 0), End: date(2024, 2, 1, 0, 0)},
		})
		require.Len(t, result.Spans, 1)
		assert.Equal(t, 0, result.Spans[0].ColStart)
		assert.Equal(t, 7, result.Spans[0].ColEnd)
	})

	t.Run("adjacent spans share a lane", func(t *testing.T) {
		result := Layout(window, []Span{
			{Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 3, 0, 0)},
			{Start: date(2024, 1, 3, 0, 0), End: date(2024, 1, 4, 0, 0)},
		})
		require.Len(t, result.Spans, 2)
		assert.Equal(t, 0, result.Spans[1].Lane)
		assert.Equal(t, 1, result.LaneCount)
	})

	t.Run("empty input renders one lane", func(t *testing.T) {
		result := Layout(window, nil)
		assert.Empty(t, result.Spans)
		assert.Equal(t, 1, result.LaneCount)
	})
}

func TestLayout_InputOrderVersusSorted(t *testing.T) {
	window := NewWindow(date(2024, 1, 1, 0, 0), 10)
	// Lane 0 ends on the 6th after the first span, so the earlier span cannot
	// reuse it even though the two never overlap.
	spans := []Span{
		{Label: "late", Start: date(2024, 1, 5, 0, 0), End: date(2024, 1, 6, 0, 0)},
		{Label: "early", Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 2, 0, 0)},
	}

	literal := Layout(window, spans)
	require.Len(t, literal.Spans, 2)
	assert.Equal(t, 2, literal.LaneCount)
	assert.Equal(t, "late", literal.Spans[0].Span.Label)
	assert.Equal(t, 1, literal.Spans[1].Lane)

	sorted := LayoutWithOptions(window, spans, Options{Packing: PackSortedByStart})
	require.Len(t, sorted.Spans, 2)
	assert.Equal(t, 1, sorted.LaneCount)
	assert.Equal(t, "early", sorted.Spans[0].Span.Label)
	assert.Equal(t, 0, sorted.Spans[1].Lane)
}

func TestLayout_DoesNotMutateInput(t *testing.T) {
	window := NewWindow(date(2024, 1, 1, 0, 0), 7)
	spans := []Span{
		{Start: date(2024, 1, 5, 10, 0), End: date(2024, 1, 6, 12, 0)},
		{Start: date(2024, 1, 1, 0, 0), End: date(2024, 1, 2, 0, 0)},
	}
	before := append([]Span(nil), spans...)
	LayoutWithOptions(window, spans, Options{Packing: PackSortedByStart})
	assert.Equal(t, before, spans)
}

func TestLayout_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	window := NewWindow(date(2024, 3, 10, 0, 0), 14)

	for round := 0; round < 200; round++ {
		spans := make([]Span, rng.Intn(25))
		for i := range spans {
			start := window.Start.Add(time.Duration(rng.Intn(30*24)-8*24) * time.Hour)
			end := start.Add(time.Duration(rng.Intn(10*24)-2*24) * time.Hour)
			spans[i] = Span{Start: start, End: end, Type: SpanTypeReservation}
		}

		for _, packing := range []Packing{PackInputOrder, PackSortedByStart} {
			result := LayoutWithOptions(window, spans, Options{Packing: packing})
			assert.GreaterOrEqual(t, result.LaneCount, 1)

			for i, a := range result.Spans {
				assert.Greater(t, a.ColEnd, a.ColStart)
				assert.GreaterOrEqual(t, a.ColStart, 0)
				assert.LessOrEqual(t, a.ColEnd, window.Days)
				assert.Less(t, a.Lane, result.LaneCount)

				for _, b := range result.Spans[i+1:] {
					if a.Lane != b.Lane {
						continue
					}
					overlap := a.ColStart < b.ColEnd && b.ColStart < a.ColEnd
					assert.False(t, overlap, "spans in lane %d overlap: %+v %+v", a.Lane, a, b)
				}
			}
		}
	}
}

func TestLayout_ConvertsToWindowLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	window := NewWindow(time.Date(2024, 1, 1, 0, 0, 0, 0, berlin), 7)
	// 23:30 UTC on Jan 1st is 00:30 on Jan 2nd in Berlin.
	result := Layout(window, []Span{
		{Start: date(2024, 1, 1, 23, 30), End: date(2024, 1, 3, 23, 30)},
	})
	require.Len(t, result.Spans, 1)
	assert.Equal(t, 1, result.Spans[0].ColStart)
	assert.Equal(t, 4, result.Spans[0].ColEnd)
}
