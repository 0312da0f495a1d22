package importer

import (
	"testing"

	"github.com/co2atlas/atlas-backend/internal/sources"
)

// TestVotingDerivations runs the documented example: SPÖ=20, GRÜNE=10,
// KPÖ=2, ÖVP=30, FPÖ=30, NEOS=8 gives a combined 32, has data, and the
// 30–39% bucket color.
func TestVotingDerivations(t *testing.T) {
	f := sources.Feature{Attributes: sources.Row{
		"gkz":         "60101",
		"name":        "Testgemeinde",
		"SPO_perc":    "20",
		"GRUENE_perc": "10",
		"KPOE_perc":   "2",
		"OEVP_perc":   "30",
		"FPOE_perc":   "30",
		"NEOS_perc":   "8",
	}}

	d := VotingDistrictFromFeature(f, "SRID=4326;MULTIPOLYGON EMPTY", nil)

	if d.LeftGreenCombined != 32 {
		t.Errorf("left_green_combined = %f, want 32", d.LeftGreenCombined)
	}
	if !d.HasVotingData {
		t.Error("has_voting_data should be true")
	}
	if d.Color != ChoroplethColor(32) {
		t.Errorf("color = %q, want the 30–39%% bucket %q", d.Color, ChoroplethColor(32))
	}
	if d.Color != "#238443" {
		t.Errorf("32%% bucket color = %q, want #238443", d.Color)
	}
	if d.DistrictCode != "60101" {
		t.Errorf("district code = %q, want 60101", d.DistrictCode)
	}
}

// TestVotingAllZeroPercentages verifies a commune missing from the
// election export: no data flag, neutral gray.
func TestVotingAllZeroPercentages(t *testing.T) {
	f := sources.Feature{Attributes: sources.Row{
		"gkz":  "60199",
		"name": "Ohne Daten",
	}}

	d := VotingDistrictFromFeature(f, "SRID=4326;MULTIPOLYGON EMPTY", nil)

	if d.HasVotingData {
		t.Error("has_voting_data should be false for all-zero percentages")
	}
	if d.Color != "#cccccc" {
		t.Errorf("color = %q, want neutral gray", d.Color)
	}
	if d.LeftGreenCombined != 0 {
		t.Errorf("left_green_combined = %f, want 0", d.LeftGreenCombined)
	}
}

// TestChoroplethBuckets pins the ordered threshold comparisons at their
// edges.
func TestChoroplethBuckets(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{-1, "#cccccc"},
		{0, "#cccccc"},
		{0.1, "#ffffe5"},
		{4.99, "#ffffe5"},
		{5, "#f7fcb9"},
		{10, "#d9f0a3"},
		{15, "#addd8e"},
		{20, "#78c679"},
		{25, "#41ab5d"},
		{30, "#238443"},
		{39.9, "#238443"},
		{40, "#006837"},
		{59.9, "#006837"},
		{60, "#004529"},
		{85, "#004529"},
	}
	for _, c := range cases {
		if got := ChoroplethColor(c.pct); got != c.want {
			t.Errorf("ChoroplethColor(%g) = %q, want %q", c.pct, got, c.want)
		}
	}
}

// TestHasVotingDataSinglePositive verifies one positive percentage is
// enough.
func TestHasVotingDataSinglePositive(t *testing.T) {
	if HasVotingData(0, 0, 0, 0, 0, 0) {
		t.Error("all zero should report no data")
	}
	if !HasVotingData(0, 0, 0.1, 0, 0, 0) {
		t.Error("a single positive percentage should report data")
	}
}
