package proj

import "math"

// ellipsoid is a reference ellipsoid given by semi-major axis and flattening.
type ellipsoid struct {
	a float64 // semi-major axis, meters
	f float64 // flattening
}

// e2 returns the first eccentricity squared.
func (e ellipsoid) e2() float64 { return e.f * (2 - e.f) }

var (
	bessel = ellipsoid{a: 6377397.155, f: 1 / 299.1528128}
	grs80  = ellipsoid{a: 6378137, f: 1 / 298.257222101}
	wgs84  = ellipsoid{a: 6378137, f: 1 / 298.257223563}
)

// helmert is a 7-parameter position-vector datum transformation.
// Translations in meters, rotations in arc seconds, scale in ppm.
type helmert struct {
	dx, dy, dz float64
	rx, ry, rz float64
	ds         float64
}

// apply transforms geocentric cartesian coordinates into the target datum.
func (h *helmert) apply(x, y, z float64) (float64, float64, float64) {
	const arcsec = math.Pi / (3600 * 180)
	s := 1 + h.ds*1e-6
	rx := h.rx * arcsec
	ry := h.ry * arcsec
	rz := h.rz * arcsec
	x2 := h.dx + s*(x-rz*y+ry*z)
	y2 := h.dy + s*(rz*x+y-rx*z)
	z2 := h.dz + s*(-ry*x+rx*y+z)
	return x2, y2, z2
}

// geodeticToGeocentric converts radians lat/lon on the ellipsoid surface to
// geocentric cartesian coordinates.
func geodeticToGeocentric(e ellipsoid, lat, lon float64) (x, y, z float64) {
	sin := math.Sin(lat)
	cos := math.Cos(lat)
	n := e.a / math.Sqrt(1-e.e2()*sin*sin)
	x = n * cos * math.Cos(lon)
	y = n * cos * math.Sin(lon)
	z = n * (1 - e.e2()) * sin
	return x, y, z
}

// geocentricToGeodetic converts geocentric cartesian coordinates back to
// radians lat/lon, iterating the latitude to convergence.
func geocentricToGeodetic(e ellipsoid, x, y, z float64) (lat, lon float64) {
	lon = math.Atan2(y, x)
	p := math.Hypot(x, y)
	lat = math.Atan2(z, p*(1-e.e2()))
	for i := 0; i < 8; i++ {
		sin := math.Sin(lat)
		n := e.a / math.Sqrt(1-e.e2()*sin*sin)
		lat = math.Atan2(z+e.e2()*n*sin, p)
	}
	return lat, lon
}

// shiftToWGS84 moves radians lat/lon from the source ellipsoid/datum onto
// WGS84. A nil shift means the datum is treated as coincident with WGS84.
func shiftToWGS84(e ellipsoid, shift *helmert, lat, lon float64) (float64, float64) {
	if shift == nil {
		return lat, lon
	}
	x, y, z := geodeticToGeocentric(e, lat, lon)
	x, y, z = shift.apply(x, y, z)
	return geocentricToGeodetic(wgs84, x, y, z)
}
