package timeline

import "time"

const DefaultWindowDays = 21

// Window is the contiguous range of calendar days being rendered.
type Window struct {
	Start time.Time
	Days  int
}

// NewWindow truncates start to midnight of its calendar day. Non-positive
// day counts fall back to DefaultWindowDays.
func NewWindow(start time.Time, days int) Window {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return Window{Start: StartOfDay(start), Days: days}
}

// End is the exclusive end of the window.
func (w Window) End() time.Time {
	return AddDays(w.Start, w.Days)
}

func (w Window) Location() *time.Location {
	return w.Start.Location()
}

// Shift moves the window by deltaDays, keeping its length.
func Shift(w Window, deltaDays int) Window {
	return Window{Start: AddDays(StartOfDay(w.Start), deltaDays), Days: w.Days}
}

// JumpToToday moves the window to start on the current local day.
func JumpToToday(w Window) Window {
	return JumpToTodayAt(w, time.Now())
}

func JumpToTodayAt(w Window, now time.Time) Window {
	return Window{Start: StartOfDay(now.In(w.Location())), Days: w.Days}
}

// TodayColumn reports the column of the current local day, or ok=false when
// today is not visible.
func TodayColumn(w Window) (col int, ok bool) {
	return TodayColumnAt(w, time.Now())
}

func TodayColumnAt(w Window, now time.Time) (col int, ok bool) {
	diff := DaysBetween(w.Start, StartOfDay(now.In(w.Location())))
	if diff < 0 || diff >= w.Days {
		return -1, false
	}
	return diff, true
}

// StartOfDay truncates t to midnight of its calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays adds n calendar days, preserving wall clock across DST changes.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween counts calendar days from a to b, ignoring time of day and DST.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
