package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/co2atlas/atlas-backend/internal/proj"
)

// Transformer reprojects geometries into WGS84 by trying an ordered list of
// candidate national grids. Source datasets mix already-geographic features
// with projected ones, so the decision is made per leaf coordinate, not per
// file.
type Transformer struct {
	candidates []proj.CRS
}

// NewTransformer builds a transformer over the given candidate grids, in
// order of preference. With no arguments the default Austrian candidates
// apply (Austria Lambert, then Gauss-Krüger M34).
func NewTransformer(candidates ...proj.CRS) *Transformer {
	if len(candidates) == 0 {
		candidates = proj.DefaultCandidates()
	}
	return &Transformer{candidates: candidates}
}

// ValidWGS84 reports whether the pair is a finite coordinate inside the
// geographic longitude/latitude range.
func ValidWGS84(lon, lat float64) bool {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return false
	}
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// Point converts a single coordinate pair to WGS84.
//
// A pair already inside the geographic range is passed through unchanged.
// Note that a projected coordinate with small magnitudes would be
// misclassified here as already geographic; Austrian grid eastings and
// northings are five to seven digit meter values, so in practice the
// ranges do not overlap.
//
// Otherwise each candidate grid is tried in order and the first result in
// valid WGS84 range wins. If no candidate produces a valid result the
// original pair is returned untouched and the downstream validity gate
// rejects the record.
func (t *Transformer) Point(x, y float64) (float64, float64) {
	if ValidWGS84(x, y) {
		return x, y
	}
	for _, crs := range t.candidates {
		lon, lat := crs.ToWGS84(x, y)
		if ValidWGS84(lon, lat) {
			return lon, lat
		}
	}
	return x, y
}

// Geometry converts every leaf coordinate of g to WGS84, applying the same
// per-pair fallback as Point. The input geometry is not modified. Transform
// failure never drops a geometry here; invalid leaves surface in IsValidWGS84.
func (t *Transformer) Geometry(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return MapPoints(g, func(p orb.Point) orb.Point {
		lon, lat := t.Point(p[0], p[1])
		return orb.Point{lon, lat}
	})
}
