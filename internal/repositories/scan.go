package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "medsales/internal/config"
)

// rowScanner lets the same scan helpers serve *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func sharedDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// decodeStringList tolerantly parses a JSON text column holding an array.
// Bad or empty data yields an empty slice, never nil and never an error;
// listing endpoints should not fail over one malformed row.
func decodeStringList(raw string) []string {
	out := []string{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

func decodeStringMap(raw string) map[string]string {
	out := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]string{}
	}
	return out
}

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
