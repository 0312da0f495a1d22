package importer

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

// boundsAround returns bounds covering a small box near Graz.
func boundsAround() *AreaBounds {
	b := &AreaBounds{}
	b.Extend(orb.Polygon{{{15, 46.8}, {15.8, 46.8}, {15.8, 47.3}, {15, 46.8}}})
	return b
}

func testImporter() *Importer {
	return &Importer{
		Trans:  geo.NewTransformer(),
		Bounds: boundsAround(),
	}
}

// TestProminentCO2Strict pins the strict-greater-than contract at the
// threshold.
func TestProminentCO2Strict(t *testing.T) {
	if ProminentCO2(50000) {
		t.Error("exactly 50000 t must not be prominent")
	}
	if !ProminentCO2(50001) {
		t.Error("50001 t must be prominent")
	}
}

// TestImportScenarioCounts runs the documented 3-feature scenario through
// the shared per-record pipeline: one valid inside-bounds feature, one
// with a malformed coordinate, one valid but outside bounds. Exactly one
// is emitted, one errors, one is filtered.
func TestImportScenarioCounts(t *testing.T) {
	imp := testImporter()

	feats := []sources.Feature{
		{Geometry: orb.Point{15.4, 47.0}},          // valid, inside
		{Geometry: orb.Point{math.NaN(), 47.0}},    // malformed
		{Geometry: orb.Point{10.0, 50.0}},          // valid, outside
	}

	stats := LayerStats{Layer: "scenario"}
	var emitted []orb.Geometry
	imp.eachPrepared(feats, 0, &stats, func(_ sources.Feature, g orb.Geometry) error {
		emitted = append(emitted, g)
		return nil
	})

	if stats.Imported != 1 || stats.Errors != 1 || stats.Filtered != 1 {
		t.Errorf("got imported=%d errors=%d filtered=%d, want 1/1/1",
			stats.Imported, stats.Errors, stats.Filtered)
	}
	if len(emitted) != 1 {
		t.Fatalf("expected 1 emitted geometry, got %d", len(emitted))
	}
	if pt, ok := emitted[0].(orb.Point); !ok || pt[0] != 15.4 {
		t.Errorf("unexpected emitted geometry %v", emitted[0])
	}
}

// TestEmitFailureCountsAsErrorAndContinues verifies a write failure skips
// the record without aborting the loop.
func TestEmitFailureCountsAsErrorAndContinues(t *testing.T) {
	imp := testImporter()

	feats := []sources.Feature{
		{Geometry: orb.Point{15.4, 47.0}},
		{Geometry: orb.Point{15.5, 47.1}},
	}

	stats := LayerStats{Layer: "emitfail"}
	calls := 0
	imp.eachPrepared(feats, 0, &stats, func(sources.Feature, orb.Geometry) error {
		calls++
		if calls == 1 {
			return errors.New("constraint violation")
		}
		return nil
	})

	if calls != 2 {
		t.Errorf("emit called %d times, want 2 (loop must continue)", calls)
	}
	if stats.Imported != 1 || stats.Errors != 1 {
		t.Errorf("got imported=%d errors=%d, want 1/1", stats.Imported, stats.Errors)
	}
}

// TestFeatureCapTruncates verifies the production cap is a hard truncation
// after N processed records.
func TestFeatureCapTruncates(t *testing.T) {
	imp := testImporter()

	var feats []sources.Feature
	for i := 0; i < 10; i++ {
		feats = append(feats, sources.Feature{Geometry: orb.Point{15.4, 47.0}})
	}

	stats := LayerStats{Layer: "capped"}
	imp.eachPrepared(feats, 3, &stats, func(sources.Feature, orb.Geometry) error {
		return nil
	})

	if stats.Imported != 3 {
		t.Errorf("imported %d records, want cap of 3", stats.Imported)
	}
}

// TestPreparePointGridCoordinates verifies a grid coordinate inside the
// study region reprojects and passes the filter, and that a failed
// transform surfaces as invalid.
func TestPreparePointGridCoordinates(t *testing.T) {
	imp := testImporter()
	imp.Bounds = &AreaBounds{} // pass-everything, isolate transform+gate

	// Austria Lambert false origin, about 13.33 E 47.5 N.
	pt, oc := imp.preparePoint(400000, 400000)
	if oc != outcomeOK {
		t.Fatalf("expected grid coordinate to reproject, outcome %d", oc)
	}
	if math.Abs(pt[0]-13.33) > 0.05 || math.Abs(pt[1]-47.5) > 0.05 {
		t.Errorf("reprojected to (%f, %f), want ~(13.33, 47.5)", pt[0], pt[1])
	}

	if _, oc := imp.preparePoint(math.NaN(), 1); oc != outcomeInvalid {
		t.Errorf("NaN coordinate: outcome %d, want invalid", oc)
	}
}

// TestRowPointRejectsMalformedCoordinates verifies a tabular record whose
// coordinate cells are missing or non-numeric counts as an error rather
// than quietly becoming the valid point (0, 0), even with bounds unset.
func TestRowPointRejectsMalformedCoordinates(t *testing.T) {
	imp := testImporter()
	imp.Bounds = &AreaBounds{} // pass-everything, so (0, 0) would slip through

	cases := []sources.Row{
		{"lon": "n/a", "lat": ""},
		{"lon": "15.4"},
		{"name": "Werk Nord"},
	}
	for _, row := range cases {
		if _, oc := imp.rowPoint(row); oc != outcomeInvalid {
			t.Errorf("rowPoint(%v): outcome %d, want invalid", row, oc)
		}
	}

	pt, oc := imp.rowPoint(sources.Row{"lon": "15,4", "lat": "47,0"})
	if oc != outcomeOK {
		t.Fatalf("well-formed coordinates rejected, outcome %d", oc)
	}
	if math.Abs(pt[0]-15.4) > 1e-9 || math.Abs(pt[1]-47.0) > 1e-9 {
		t.Errorf("rowPoint = (%f, %f), want (15.4, 47.0)", pt[0], pt[1])
	}
}

// TestPropsJSONPreservesAttributes verifies the raw bag round-trips
// through the jsonb encoding helper.
func TestPropsJSONPreservesAttributes(t *testing.T) {
	if got := propsJSON(nil); got != "{}" {
		t.Errorf("empty bag = %q, want {}", got)
	}
	got := propsJSON(sources.Row{"NAME": "Werk Süd"})
	if got != `{"NAME":"Werk Süd"}` {
		t.Errorf("bag = %q", got)
	}
}

// TestReportTotals verifies the folded summary sums per-layer counters.
func TestReportTotals(t *testing.T) {
	var r Report
	r.Add(LayerStats{Layer: "a", Imported: 2, Filtered: 1})
	r.Add(LayerStats{Layer: "b", Imported: 3, Errors: 4})

	if r.TotalImported() != 5 {
		t.Errorf("TotalImported = %d, want 5", r.TotalImported())
	}
	if r.TotalFiltered() != 1 {
		t.Errorf("TotalFiltered = %d, want 1", r.TotalFiltered())
	}
	if r.TotalErrors() != 4 {
		t.Errorf("TotalErrors = %d, want 4", r.TotalErrors())
	}
}
