package utils

import "strings"

// SplitTagsCsv turns "a, b,,c" into [a b c].
func SplitTagsCsv(csv string) []string {
	tags := []string{}
	for _, tag := range strings.Split(csv, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, ",")
}
