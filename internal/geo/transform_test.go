package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/proj"
)

// fakeCRS maps exactly one grid pair to one WGS84 pair and everything else
// to an out-of-range result, so tests can observe which candidate won.
type fakeCRS struct {
	code       int
	inX, inY   float64
	outLon     float64
	outLat     float64
}

func (f fakeCRS) ToWGS84(x, y float64) (float64, float64) {
	if x == f.inX && y == f.inY {
		return f.outLon, f.outLat
	}
	return 1e6, 1e6
}

func (f fakeCRS) EPSG() int { return f.code }

// TestPointPassthroughWGS84 verifies that a pair already inside the
// geographic range is returned unchanged, with no projection applied.
func TestPointPassthroughWGS84(t *testing.T) {
	tr := geo.NewTransformer(fakeCRS{code: 1, inX: 15.5, inY: 47.1, outLon: 0, outLat: 0})

	lon, lat := tr.Point(15.5, 47.1)
	if lon != 15.5 || lat != 47.1 {
		t.Errorf("expected passthrough (15.5, 47.1), got (%f, %f)", lon, lat)
	}
}

// TestPointFirstCandidateWins verifies that a pair valid only under the
// first candidate yields that candidate's projection.
func TestPointFirstCandidateWins(t *testing.T) {
	first := fakeCRS{code: 1, inX: 400000, inY: 400000, outLon: 13.3, outLat: 47.5}
	second := fakeCRS{code: 2, inX: 400000, inY: 400000, outLon: 16.3, outLat: 47.0}
	tr := geo.NewTransformer(first, second)

	lon, lat := tr.Point(400000, 400000)
	if lon != 13.3 || lat != 47.5 {
		t.Errorf("expected first candidate result (13.3, 47.5), got (%f, %f)", lon, lat)
	}
}

// TestPointSecondCandidateFallback verifies that when the first candidate
// produces an out-of-range result the second candidate's projection is
// used.
func TestPointSecondCandidateFallback(t *testing.T) {
	first := fakeCRS{code: 1, inX: -1, inY: -1, outLon: 13.3, outLat: 47.5}
	second := fakeCRS{code: 2, inX: 750000, inY: 205000, outLon: 16.3, outLat: 47.0}
	tr := geo.NewTransformer(first, second)

	lon, lat := tr.Point(750000, 205000)
	if lon != 16.3 || lat != 47.0 {
		t.Errorf("expected second candidate result (16.3, 47.0), got (%f, %f)", lon, lat)
	}
}

// TestPointAllCandidatesFail verifies that when no candidate yields a
// valid result the original pair comes back untouched for the downstream
// validity gate to reject.
func TestPointAllCandidatesFail(t *testing.T) {
	tr := geo.NewTransformer(
		fakeCRS{code: 1, inX: -1, inY: -1},
		fakeCRS{code: 2, inX: -1, inY: -1},
	)

	lon, lat := tr.Point(123456, 654321)
	if lon != 123456 || lat != 654321 {
		t.Errorf("expected original pair back, got (%f, %f)", lon, lat)
	}
}

// TestGeometryTransformsNestedCoordinates verifies the recursive descent
// reaches leaves at polygon nesting depth and leaves the input unmodified.
func TestGeometryTransformsNestedCoordinates(t *testing.T) {
	tr := geo.NewTransformer(proj.DefaultCandidates()...)

	in := orb.MultiPolygon{
		{
			{{400000, 400000}, {410000, 400000}, {410000, 410000}, {400000, 400000}},
		},
	}
	out := tr.Geometry(in)

	mp, ok := out.(orb.MultiPolygon)
	if !ok {
		t.Fatalf("expected MultiPolygon back, got %T", out)
	}
	for _, p := range mp[0][0] {
		if !geo.ValidWGS84(p[0], p[1]) {
			t.Errorf("leaf (%f, %f) not transformed to WGS84", p[0], p[1])
		}
	}
	// input untouched
	if in[0][0][0][0] != 400000 {
		t.Error("input geometry was mutated")
	}
}

// TestValidWGS84Ranges pins the acceptance predicate's edges.
func TestValidWGS84Ranges(t *testing.T) {
	cases := []struct {
		lon, lat float64
		want     bool
	}{
		{0, 0, true},
		{-180, -90, true},
		{180, 90, true},
		{180.0001, 0, false},
		{0, 90.0001, false},
		{math.NaN(), 0, false},
		{0, math.Inf(1), false},
	}
	for _, c := range cases {
		if got := geo.ValidWGS84(c.lon, c.lat); got != c.want {
			t.Errorf("ValidWGS84(%f, %f) = %v, want %v", c.lon, c.lat, got, c.want)
		}
	}
}
