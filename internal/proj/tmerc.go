package proj

import "math"

// transverseMercator is an ellipsoidal transverse Mercator projection
// (Gauss-Krüger, EPSG method 9807), inverse direction only, using the
// Snyder series expansion.
type transverseMercator struct {
	code  int
	ell   ellipsoid
	shift *helmert

	lon0 float64 // central meridian, radians
	k0   float64 // scale factor at the central meridian
	fe   float64 // false easting
	fn   float64 // false northing
	m0   float64 // meridional arc at the origin latitude
}

func newTransverseMercator(code int, ell ellipsoid, shift *helmert,
	lon0Deg, lat0Deg, k0, fe, fn float64) *transverseMercator {

	return &transverseMercator{
		code:  code,
		ell:   ell,
		shift: shift,
		lon0:  lon0Deg * math.Pi / 180,
		k0:    k0,
		fe:    fe,
		fn:    fn,
		m0:    meridionalArc(ell, lat0Deg*math.Pi/180),
	}
}

func (t *transverseMercator) EPSG() int { return t.code }

func (t *transverseMercator) ToWGS84(x, y float64) (float64, float64) {
	e2 := t.ell.e2()
	ep2 := e2 / (1 - e2)
	a := t.ell.a

	m := t.m0 + (y-t.fn)/t.k0
	mu := m / (a * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	phi1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu) +
		(1097*e1*e1*e1*e1/512)*math.Sin(8*mu)

	sin1 := math.Sin(phi1)
	cos1 := math.Cos(phi1)
	tan1 := math.Tan(phi1)

	c1 := ep2 * cos1 * cos1
	t1 := tan1 * tan1
	n1 := a / math.Sqrt(1-e2*sin1*sin1)
	r1 := a * (1 - e2) / math.Pow(1-e2*sin1*sin1, 1.5)
	d := (x - t.fe) / (n1 * t.k0)

	lat := phi1 - (n1*tan1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d*d*d*d/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d*d*d*d*d*d/720)

	lon := t.lon0 + (d-
		(1+2*t1+c1)*d*d*d/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d*d*d*d*d/120)/cos1

	lat, lon = shiftToWGS84(t.ell, t.shift, lat, lon)
	return lon * 180 / math.Pi, lat * 180 / math.Pi
}

// meridionalArc computes the distance along the meridian from the equator
// to the given latitude.
func meridionalArc(ell ellipsoid, lat float64) float64 {
	e2 := ell.e2()
	return ell.a * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*lat -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*lat) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*lat) -
		(35*e2*e2*e2/3072)*math.Sin(6*lat))
}
