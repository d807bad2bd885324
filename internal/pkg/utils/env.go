package utils

import (
	"os"
	"strings"
)

// GetEnvString returns the trimmed value of key, or defaultValue when the
// variable is unset or blank.
func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
