package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// encodeMap stores a map column as a JSON object; nil maps become "{}".
func encodeMap[V any](m map[string]V) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding map column: %w", err)
	}
	return string(b), nil
}

// decodeMap reads a JSON object column. An empty object decodes to nil so
// that round-tripped items compare equal to items that never had the map.
func decodeMap[V any](s string) (map[string]V, error) {
	if s == "" || s == "{}" {
		return nil, nil
	}
	var m map[string]V
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decoding map column: %w", err)
	}
	return m, nil
}
