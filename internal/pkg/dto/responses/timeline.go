package responses

import "time"

type TimelineWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

type TimelineDay struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	IsWeekend bool   `json:"is_weekend"`
	IsToday   bool   `json:"is_today"`
}

type TimelineBar struct {
	ColStart int       `json:"col_start"`
	ColEnd   int       `json:"col_end"`
	Lane     int       `json:"lane"`
	Type     string    `json:"type"`
	Status   string    `json:"status,omitempty"`
	Label    string    `json:"label,omitempty"`
	Class    string    `json:"class"`
	Tooltip  string    `json:"tooltip"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type TimelineNavigation struct {
	Prev  TimelineWindow `json:"prev"`
	Next  TimelineWindow `json:"next"`
	Today TimelineWindow `json:"today"`
}

type Timeline struct {
	ItemID      int64              `json:"item_id"`
	Window      TimelineWindow     `json:"window"`
	Days        []TimelineDay      `json:"days"`
	Bars        []TimelineBar      `json:"bars"`
	LaneCount   int                `json:"lane_count"`
	TodayColumn *int               `json:"today_column"`
	Navigation  TimelineNavigation `json:"navigation"`
	// Degraded is set when the availability fetch failed and the grid was
	// rendered without bars.
	Degraded bool `json:"degraded"`
}

type TimelineExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
