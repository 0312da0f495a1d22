package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Simplify reduces the vertex count of g with Douglas-Peucker at the given
// tolerance (degrees). A simplification failure is never worth losing the
// record over: on any panic or empty result the input is returned
// unchanged. The input geometry itself is never mutated.
func Simplify(g orb.Geometry, tolerance float64) (out orb.Geometry) {
	if g == nil || tolerance <= 0 {
		return g
	}
	defer func() {
		if recover() != nil {
			out = g
		}
	}()
	simplified := simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
	if simplified == nil || Complexity(simplified) == 0 {
		return g
	}
	return simplified
}

// SimplifyOver applies Simplify only when the vertex count exceeds the
// given threshold, returning the (possibly unchanged) geometry and whether
// simplification ran. Per-layer thresholds keep large national polygon
// datasets bounded without degrading small features.
func SimplifyOver(g orb.Geometry, threshold int, tolerance float64) (orb.Geometry, bool) {
	if threshold <= 0 || Complexity(g) <= threshold {
		return g, false
	}
	return Simplify(g, tolerance), true
}
