package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// IsValid reports whether every leaf coordinate of g is a finite number
// pair and the geometry has at least one coordinate. It is purely
// structural; range checking is IsValidWGS84's job.
func IsValid(g orb.Geometry) bool {
	if g == nil {
		return false
	}
	count := 0
	valid := true
	EachPoint(g, func(p orb.Point) {
		count++
		for _, v := range [2]float64{p[0], p[1]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				valid = false
			}
		}
	})
	return valid && count > 0
}

// IsValidWGS84 is the persistence gate: structural validity plus every leaf
// inside the WGS84 longitude/latitude range. A geometry whose reprojection
// failed (left in grid meters) fails this check and is counted as an error
// by the importers.
func IsValidWGS84(g orb.Geometry) bool {
	if !IsValid(g) {
		return false
	}
	valid := true
	EachPoint(g, func(p orb.Point) {
		if !ValidWGS84(p[0], p[1]) {
			valid = false
		}
	})
	return valid
}

// Complexity returns the number of leaf coordinates in g.
func Complexity(g orb.Geometry) int {
	count := 0
	EachPoint(g, func(orb.Point) { count++ })
	return count
}
