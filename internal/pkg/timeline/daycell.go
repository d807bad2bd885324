package timeline

import (
	"fmt"
	"strings"
	"time"
)

type DayCell struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	IsWeekend bool      `json:"is_weekend"`
}

const (
	LocaleGerman  = "de"
	LocaleEnglish = "en"
)

var weekdayNames = map[string][7]string{
	LocaleGerman:  {"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	LocaleEnglish: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// BuildDayCells returns one cell per visible day, in order.
func BuildDayCells(w Window, locale string) []DayCell {
	days := w.Days
	if days < 0 {
		days = 0
	}
	start := StartOfDay(w.Start)
	cells := make([]DayCell, days)
	for i := range cells {
		d := AddDays(start, i)
		cells[i] = DayCell{
			Date:      d,
			Label:     DayLabel(d, locale),
			IsWeekend: d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
		}
	}
	return cells
}

// DayLabel formats the weekday and day of month, e.g. "Mo 1." or "Mon 1".
func DayLabel(d time.Time, locale string) string {
	names, ok := weekdayNames[strings.ToLower(locale)]
	if !ok {
		names = weekdayNames[LocaleGerman]
		locale = LocaleGerman
	}
	if strings.ToLower(locale) == LocaleEnglish {
		return fmt.Sprintf("%s %d", names[d.Weekday()], d.Day())
	}
	return fmt.Sprintf("%s %d.", names[d.Weekday()], d.Day())
}

// FormatDate renders a date the way tooltips show it.
func FormatDate(d time.Time, locale string) string {
	if strings.ToLower(locale) == LocaleEnglish {
		return d.Format("01/02/2006")
	}
	return d.Format("2.1.2006")
}

// Tooltip describes a span for hover text. Dates are shown in loc, the
// calendar the bar is laid out in.
func Tooltip(s Span, locale string, loc *time.Location) string {
	kind := "Reservierung"
	if strings.ToLower(locale) == LocaleEnglish {
		kind = "Reservation"
	}
	if s.Type == SpanTypeLoan {
		kind = "Ausleihe"
		if strings.ToLower(locale) == LocaleEnglish {
			kind = "Loan"
		}
	}
	status := ""
	if s.Status != "" {
		status = " • " + string(s.Status)
	}
	label := ""
	if s.Label != "" {
		label = "\n" + s.Label
	}
	return fmt.Sprintf("%s%s\n%s – %s%s", kind, status, FormatDate(s.Start.In(loc), locale), FormatDate(s.End.In(loc), locale), label)
}
