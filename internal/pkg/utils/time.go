package utils

import (
	"invrent-service/internal/pkg/constvars"
	"time"
)

// ParseDateOrDateTime accepts RFC3339 timestamps, date-times without a zone
// and plain YYYY-MM-DD dates. Values without a zone are read in loc.
func ParseDateOrDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range constvars.BackendLocalDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.ParseInLocation(constvars.BackendDateLayout, value, loc)
}

func FormatBackendDate(t time.Time) string {
	return t.Format(constvars.BackendDateLayout)
}
