package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEntry_UnmarshalJSON(t *testing.T) {
	var entries []HistoryEntry
	payload := `[
		{"ts":null,"createdAt":"2024-01-01T10:00:00Z","user":"anna","action":"LOAN"},
		{"date":"2024-01-02","actor":"bob","user":"ignored","action":"RETURN"},
		{"action":"EDIT"}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, "2024-01-01T10:00:00Z", entries[0].Timestamp)
	assert.Equal(t, "anna", entries[0].Actor)
	assert.Equal(t, "2024-01-02", entries[1].Timestamp)
	assert.Equal(t, "bob", entries[1].Actor)
	assert.Empty(t, entries[2].Timestamp)
	assert.Empty(t, entries[2].Actor)
	assert.Equal(t, "EDIT", entries[2].Action)
}

func TestHistoryEntry_RejectsInvalidJSON(t *testing.T) {
	var entry HistoryEntry
	assert.Error(t, entry.UnmarshalJSON([]byte(`{"ts":`)))
}
