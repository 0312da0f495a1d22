// Package proj implements the projected coordinate reference systems that
// Austrian survey data is delivered in, with pure-Go inverse projections to
// WGS84. Only the grid-to-geographic direction is implemented; the import
// pipeline never projects back into a national grid.
package proj

// CRS converts projected grid coordinates into WGS84 geographic coordinates.
type CRS interface {
	// ToWGS84 converts an easting/northing pair (meters) to longitude and
	// latitude in degrees.
	ToWGS84(x, y float64) (lon, lat float64)

	// EPSG returns the EPSG code of the grid.
	EPSG() int
}

// Supported EPSG codes.
const (
	EPSGWGS84              = 4326  // WGS 84 geographic
	EPSGAustriaLambert     = 31287 // MGI / Austria Lambert
	EPSGGaussKruegerM34    = 31259 // MGI / Austria GK M34
	EPSGAustriaLambertETRS = 3416  // ETRS89 / Austria Lambert
)

// mgiToWGS84 is the 7-parameter position-vector shift from the MGI datum
// (Bessel 1841) to WGS84, per the EPSG registry entry for Austria.
var mgiToWGS84 = &helmert{
	dx: 577.326, dy: 90.129, dz: 463.919,
	rx: 5.137, ry: 1.474, rz: 5.297,
	ds: 2.4232,
}

// ForEPSG returns the CRS for the given EPSG code, or nil if the code is
// not supported.
func ForEPSG(code int) CRS {
	switch code {
	case EPSGWGS84:
		return identity{}
	case EPSGAustriaLambert:
		return newLambertConformalConic(EPSGAustriaLambert, bessel, mgiToWGS84,
			13.0+20.0/60.0, 47.5, 49, 46, 400000, 400000)
	case EPSGGaussKruegerM34:
		return newTransverseMercator(EPSGGaussKruegerM34, bessel, mgiToWGS84,
			16.0+20.0/60.0, 0, 1, 750000, -5000000)
	case EPSGAustriaLambertETRS:
		// ETRS89 is close enough to WGS84 that no datum shift applies.
		return newLambertConformalConic(EPSGAustriaLambertETRS, grs80, nil,
			13.0+20.0/60.0, 47.5, 49, 46, 400000, 400000)
	default:
		return nil
	}
}

// DefaultCandidates returns the ordered list of grids the transformer tries
// when the true source system of a dataset is unknown: the Austria Lambert
// grid first, then Gauss-Krüger M34.
func DefaultCandidates() []CRS {
	return []CRS{
		ForEPSG(EPSGAustriaLambert),
		ForEPSG(EPSGGaussKruegerM34),
	}
}

// identity passes coordinates through for data already in EPSG:4326.
type identity struct{}

func (identity) ToWGS84(x, y float64) (float64, float64) { return x, y }
func (identity) EPSG() int                               { return EPSGWGS84 }
