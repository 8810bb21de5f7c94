package main

import (
	"encoding/json"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// RecordMapper describes one badger entry for the debug inspector. Records
// are JSON documents; index entries hold a bare id.
func RecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	kind, _, _ := strings.Cut(key, ":")
	row.Type = strings.ToUpper(kind)

	var record map[string]any
	if err := json.Unmarshal(val, &record); err != nil {
		row.Type = "INDEX"
		row.Detail = string(val)
		return row
	}
	for _, field := range []string{"message", "content", "username", "name"} {
		if v, ok := record[field].(string); ok {
			row.Detail = v
			break
		}
	}
	return row
}
