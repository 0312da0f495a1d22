package sources

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRowGetCaseInsensitiveFallback verifies lookup tries candidate names
// in order and falls back to case-insensitive matching.
func TestRowGetCaseInsensitiveFallback(t *testing.T) {
	row := Row{"NAME": "Werk Nord", "Betreiber": "Verbund"}

	if got := row.Get("name"); got != "Werk Nord" {
		t.Errorf("Get(name) = %q, want Werk Nord", got)
	}
	if got := row.Get("operator", "betreiber"); got != "Verbund" {
		t.Errorf("Get(operator, betreiber) = %q, want Verbund", got)
	}
	if got := row.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

// TestRowFloatAustrianFormats verifies decimal commas and thousands
// separators parse, and that junk defaults to zero.
func TestRowFloatAustrianFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"12.5", 12.5},
		{"12,5", 12.5},
		{"1.234,56", 1234.56},
		{"50 000", 50000},
		{"", 0},
		{"n/a", 0},
	}
	for _, c := range cases {
		row := Row{"v": c.raw}
		if got := row.Float("v"); got != c.want {
			t.Errorf("Float(%q) = %g, want %g", c.raw, got, c.want)
		}
	}
}

// TestRowFloatOKReportsFailure verifies the explicit variant distinguishes
// a genuine zero from a missing or unparseable cell.
func TestRowFloatOKReportsFailure(t *testing.T) {
	row := Row{"x": "0", "bad": "n/a", "blank": ""}

	if v, ok := row.FloatOK("x"); !ok || v != 0 {
		t.Errorf("FloatOK(x) = %g, %v, want 0, true", v, ok)
	}
	if _, ok := row.FloatOK("bad"); ok {
		t.Error("FloatOK(bad) reported success for n/a")
	}
	if _, ok := row.FloatOK("blank"); ok {
		t.Error("FloatOK(blank) reported success for empty cell")
	}
	if _, ok := row.FloatOK("absent"); ok {
		t.Error("FloatOK(absent) reported success for missing column")
	}
}

// TestReadCSVHeaderMapping verifies header-keyed rows, BOM stripping, and
// short-row padding.
func TestReadCSVHeaderMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	content := "\ufeffname,lat,lon\nWerk Nord,47.1,15.4\nWerk Süd,46.9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Get("name") != "Werk Nord" {
		t.Errorf("BOM not stripped from first header: %v", rows[0])
	}
	if rows[0].Float("lat") != 47.1 {
		t.Errorf("lat = %g, want 47.1", rows[0].Float("lat"))
	}
	if rows[1].Get("lon") != "" {
		t.Errorf("short row should pad lon empty, got %q", rows[1].Get("lon"))
	}
}

// TestReadCSVMissingFile verifies a missing file surfaces as an error for
// the caller to log and skip.
func TestReadCSVMissingFile(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
