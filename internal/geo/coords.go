// Package geo provides the geometry plumbing shared by every importer:
// reprojection into WGS84 with candidate-grid fallback, structural
// validation, vertex counting, and simplification of over-complex shapes.
package geo

import "github.com/paulmach/orb"

// MapPoints applies fn to every leaf coordinate of g and returns the
// rebuilt geometry. The input is not modified. This single descent is the
// basis for reprojection; EachPoint shares the same traversal order.
func MapPoints(g orb.Geometry, fn func(orb.Point) orb.Point) orb.Geometry {
	switch t := g.(type) {
	case orb.Point:
		return fn(t)
	case orb.MultiPoint:
		out := make(orb.MultiPoint, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.LineString:
		out := make(orb.LineString, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(t))
		for i, ls := range t {
			out[i] = MapPoints(ls, fn).(orb.LineString)
		}
		return out
	case orb.Ring:
		out := make(orb.Ring, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.Polygon:
		out := make(orb.Polygon, len(t))
		for i, r := range t {
			out[i] = MapPoints(r, fn).(orb.Ring)
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(t))
		for i, p := range t {
			out[i] = MapPoints(p, fn).(orb.Polygon)
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, len(t))
		for i, c := range t {
			out[i] = MapPoints(c, fn)
		}
		return out
	default:
		return g
	}
}

// EachPoint invokes fn for every leaf coordinate of g.
func EachPoint(g orb.Geometry, fn func(orb.Point)) {
	if g == nil {
		return
	}
	MapPoints(g, func(p orb.Point) orb.Point {
		fn(p)
		return p
	})
}
