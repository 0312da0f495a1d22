// Package sources reads the raw input formats the atlas is built from:
// shapefiles, CSV exports, and one spreadsheet. Readers keep the original
// attribute names so the importers can persist them alongside the
// normalized columns.
package sources

import (
	"strconv"
	"strings"
)

// Row is one raw record keyed by its original column names.
type Row map[string]string

// Get returns the first non-empty value among the candidate column names.
// Lookup is case-insensitive because source files disagree on casing.
func (r Row) Get(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	for _, name := range names {
		for k, v := range r {
			if strings.EqualFold(k, name) && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// Float parses the first matching column as a number, tolerating decimal
// commas and thousands separators common in Austrian exports. Missing or
// unparseable values default to 0, which suits thematic attributes like
// tonnage or capacity; coordinates go through FloatOK instead.
func (r Row) Float(names ...string) float64 {
	v, _ := r.FloatOK(names...)
	return v
}

// FloatOK is Float with an explicit success report, for columns where a
// missing or malformed value must not silently become 0.
func (r Row) FloatOK(names ...string) (float64, bool) {
	raw := r.Get(names...)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, " ", "")
	if strings.Contains(raw, ",") {
		// "1.234,56" becomes "1234.56"; "12,5" becomes "12.5"
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
