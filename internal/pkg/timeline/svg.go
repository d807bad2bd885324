package timeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style controls SVG rendering.
type Style struct {
	Layout struct {
		DayWidth     int `yaml:"day_width"`
		HeaderHeight int `yaml:"header_height"`
		LaneHeight   int `yaml:"lane_height"`
		LaneGap      int `yaml:"lane_gap"`
		Margin       int `yaml:"margin"`
	} `yaml:"layout"`
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Colors struct {
		Background   string `yaml:"background"`
		Weekend      string `yaml:"weekend"`
		GridLine     string `yaml:"grid_line"`
		Text         string `yaml:"text"`
		Today        string `yaml:"today"`
		Loan         string `yaml:"loan"`
		Reservation  string `yaml:"reservation"`
		ResApproved  string `yaml:"reservation_approved"`
		ResPending   string `yaml:"reservation_pending"`
		ResCancelled string `yaml:"reservation_cancelled"`
		BarText      string `yaml:"bar_text"`
	} `yaml:"colors"`
	ShowTodayLine bool `yaml:"show_today_line"`
	Compact       bool `yaml:"compact"`
}

func DefaultStyle() Style {
	var s Style
	s.Layout.DayWidth = 40
	s.Layout.HeaderHeight = 28
	s.Layout.LaneHeight = 22
	s.Layout.LaneGap = 4
	s.Layout.Margin = 8
	s.Font.Family = "Arial, sans-serif"
	s.Font.Size = 11
	s.Colors.Background = "#ffffff"
	s.Colors.Weekend = "#f3f4f6"
	s.Colors.GridLine = "#e5e7eb"
	s.Colors.Text = "#374151"
	s.Colors.Today = "#ef4444"
	s.Colors.Loan = "#2563eb"
	s.Colors.Reservation = "#6b7280"
	s.Colors.ResApproved = "#16a34a"
	s.Colors.ResPending = "#f59e0b"
	s.Colors.ResCancelled = "#9ca3af"
	s.Colors.BarText = "#ffffff"
	s.ShowTodayLine = true
	return s
}

// LoadStyle reads a YAML style file on top of the defaults. An empty path
// returns the defaults.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("error reading style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return style, fmt.Errorf("error parsing style file: %w", err)
	}
	return style, nil
}

func (s Style) laneHeight() int {
	if s.Compact {
		return s.Layout.LaneHeight * 2 / 3
	}
	return s.Layout.LaneHeight
}

func (s Style) barColor(span Span) string {
	if span.Type == SpanTypeLoan {
		return s.Colors.Loan
	}
	switch span.Status {
	case SpanStatusApproved:
		return s.Colors.ResApproved
	case SpanStatusPending:
		return s.Colors.ResPending
	case SpanStatusCancelled:
		return s.Colors.ResCancelled
	default:
		return s.Colors.Reservation
	}
}

// RenderSVG draws the grid as a standalone SVG document.
func RenderSVG(g Grid, style Style, locale string) string {
	dayWidth := style.Layout.DayWidth
	laneHeight := style.laneHeight()
	laneGap := style.Layout.LaneGap
	margin := style.Layout.Margin
	header := style.Layout.HeaderHeight

	width := margin*2 + dayWidth*len(g.Days)
	bodyHeight := g.LaneCount*(laneHeight+laneGap) + laneGap
	height := margin*2 + header + bodyHeight

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.day-label { font-family: %s; font-size: %dpx; fill: %s; }
.bar-label { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, width, height, style.Colors.Background,
		style.Font.Family, style.Font.Size, style.Colors.Text,
		style.Font.Family, style.Font.Size-1, style.Colors.BarText))

	top := margin + header
	for i, day := range g.Days {
		x := margin + i*dayWidth
		if day.IsWeekend {
			svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x, top, dayWidth, bodyHeight, style.Colors.Weekend))
		}
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n",
			x, margin, x, top+bodyHeight, style.Colors.GridLine))
		svg.WriteString(fmt.Sprintf(`<text class="day-label" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
			x+dayWidth/2, margin+header-8, escapeXML(day.Label)))
	}

	for _, p := range g.Spans {
		x := margin + p.ColStart*dayWidth + 1
		w := (p.ColEnd-p.ColStart)*dayWidth - 2
		y := top + laneGap + p.Lane*(laneHeight+laneGap)
		svg.WriteString(fmt.Sprintf(`<g class="%s">`, BarClass(p.Span)))
		svg.WriteString(fmt.Sprintf(`<title>%s</title>`, escapeXML(Tooltip(p.Span, locale, g.Window.Location()))))
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`,
			x, y, w, laneHeight, style.barColor(p.Span)))
		if p.Span.Label != "" && !style.Compact {
			svg.WriteString(fmt.Sprintf(`<text class="bar-label" x="%d" y="%d">%s</text>`,
				x+4, y+laneHeight/2+style.Font.Size/3, escapeXML(p.Span.Label)))
		}
		svg.WriteString("</g>\n")
	}

	if style.ShowTodayLine && g.HasToday {
		x := margin + g.TodayColumn*dayWidth + dayWidth/2
		svg.WriteString(fmt.Sprintf(`<line class="today" x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n",
			x, top, x, top+bodyHeight, style.Colors.Today))
	}

	svg.WriteString("</svg>")
	return svg.String()
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
