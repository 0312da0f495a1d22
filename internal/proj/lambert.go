package proj

import "math"

// lambertConformalConic is a Lambert conformal conic projection with two
// standard parallels (EPSG method 9802), inverse direction only.
type lambertConformalConic struct {
	code  int
	ell   ellipsoid
	shift *helmert

	lon0 float64 // origin longitude, radians
	fe   float64 // false easting
	fn   float64 // false northing

	// derived constants
	n    float64
	bigF float64
	rho0 float64
}

func newLambertConformalConic(code int, ell ellipsoid, shift *helmert,
	lon0Deg, lat0Deg, lat1Deg, lat2Deg, fe, fn float64) *lambertConformalConic {

	lat0 := lat0Deg * math.Pi / 180
	lat1 := lat1Deg * math.Pi / 180
	lat2 := lat2Deg * math.Pi / 180

	e := math.Sqrt(ell.e2())
	m1 := lccM(ell, lat1)
	m2 := lccM(ell, lat2)
	t0 := lccT(e, lat0)
	t1 := lccT(e, lat1)
	t2 := lccT(e, lat2)

	n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	bigF := m1 / (n * math.Pow(t1, n))
	rho0 := ell.a * bigF * math.Pow(t0, n)

	return &lambertConformalConic{
		code:  code,
		ell:   ell,
		shift: shift,
		lon0:  lon0Deg * math.Pi / 180,
		fe:    fe,
		fn:    fn,
		n:     n,
		bigF:  bigF,
		rho0:  rho0,
	}
}

func (l *lambertConformalConic) EPSG() int { return l.code }

func (l *lambertConformalConic) ToWGS84(x, y float64) (float64, float64) {
	e := math.Sqrt(l.ell.e2())

	dx := x - l.fe
	dy := l.rho0 - (y - l.fn)

	rho := math.Hypot(dx, dy)
	if l.n < 0 {
		rho = -rho
	}
	theta := math.Atan2(dx, dy)

	t := math.Pow(rho/(l.ell.a*l.bigF), 1/l.n)
	lon := theta/l.n + l.lon0

	// Iterate the conformal latitude back to geodetic latitude.
	lat := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 8; i++ {
		es := e * math.Sin(lat)
		lat = math.Pi/2 - 2*math.Atan(t*math.Pow((1-es)/(1+es), e/2))
	}

	lat, lon = shiftToWGS84(l.ell, l.shift, lat, lon)
	return lon * 180 / math.Pi, lat * 180 / math.Pi
}

// lccM is the Snyder m() helper: cos φ / sqrt(1 - e² sin² φ).
func lccM(ell ellipsoid, lat float64) float64 {
	sin := math.Sin(lat)
	return math.Cos(lat) / math.Sqrt(1-ell.e2()*sin*sin)
}

// lccT is the Snyder t() helper for the conformal latitude.
func lccT(e, lat float64) float64 {
	es := e * math.Sin(lat)
	return math.Tan(math.Pi/4-lat/2) / math.Pow((1-es)/(1+es), e/2)
}
