package importer

import (
	"testing"

	"github.com/paulmach/orb"
)

// TestUnsetBoundsPassEverything verifies the fail-open contract: without
// boundary data every point and geometry passes the filter.
func TestUnsetBoundsPassEverything(t *testing.T) {
	b := &AreaBounds{}

	if !b.Contains(999, 999) {
		t.Error("unset bounds must contain any point")
	}
	if !b.Intersects(orb.Point{999, 999}) {
		t.Error("unset bounds must intersect any geometry")
	}
	if !b.Intersects(nil) {
		t.Error("unset bounds must intersect nil geometry")
	}
}

// TestContainsInclusiveEdges verifies points on the combined box edge are
// inside.
func TestContainsInclusiveEdges(t *testing.T) {
	b := &AreaBounds{}
	b.Extend(orb.MultiPolygon{
		{{{15, 46.5}, {16, 46.5}, {16, 47.5}, {15, 46.5}}},
	})

	cases := []struct {
		lon, lat float64
		want     bool
	}{
		{15.5, 47, true},
		{15, 46.5, true},  // corner
		{16, 47.5, true},  // opposite corner
		{14.9, 47, false},
		{15.5, 47.6, false},
	}
	for _, c := range cases {
		if got := b.Contains(c.lon, c.lat); got != c.want {
			t.Errorf("Contains(%f, %f) = %v, want %v", c.lon, c.lat, got, c.want)
		}
	}
}

// TestExtendWidensAcrossSources verifies the combined box is the union of
// every contributed bound, not the last one.
func TestExtendWidensAcrossSources(t *testing.T) {
	b := &AreaBounds{}
	b.Extend(orb.Polygon{{{15, 47}, {15.5, 47}, {15.5, 47.5}, {15, 47}}})
	b.Extend(orb.Polygon{{{16, 46}, {16.5, 46}, {16.5, 46.5}, {16, 46}}})

	if !b.Contains(15.1, 47.1) {
		t.Error("first source region lost after extend")
	}
	if !b.Contains(16.2, 46.2) {
		t.Error("second source region not covered")
	}
	// A point between the two sources is inside the combined box.
	if !b.Contains(15.8, 46.8) {
		t.Error("combined box should span both sources")
	}
}

// TestIntersectsDisjointGeometry verifies the rectangle-overlap test
// rejects geometries whose bbox is fully outside the combined box.
func TestIntersectsDisjointGeometry(t *testing.T) {
	b := &AreaBounds{}
	b.Extend(orb.Polygon{{{15, 46.5}, {16, 46.5}, {16, 47.5}, {15, 46.5}}})

	inside := orb.LineString{{15.2, 47}, {15.8, 47.2}}
	if !b.Intersects(inside) {
		t.Error("inside line should intersect")
	}

	crossing := orb.LineString{{14, 47}, {15.2, 47}}
	if !b.Intersects(crossing) {
		t.Error("crossing line should intersect")
	}

	outside := orb.LineString{{10, 50}, {11, 51}}
	if b.Intersects(outside) {
		t.Error("disjoint line should not intersect")
	}
}

// TestBoundsChecksAreIdempotent verifies repeated calls with identical
// inputs give identical answers (pure functions of input + loaded bounds).
func TestBoundsChecksAreIdempotent(t *testing.T) {
	b := &AreaBounds{}
	b.Extend(orb.Polygon{{{15, 46.5}, {16, 46.5}, {16, 47.5}, {15, 46.5}}})

	for i := 0; i < 3; i++ {
		if !b.Contains(15.5, 47) {
			t.Fatalf("call %d: Contains changed its answer", i)
		}
		if b.Intersects(orb.Point{10, 50}) {
			t.Fatalf("call %d: Intersects changed its answer", i)
		}
	}
}
