package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// EWKT encodes g as extended WKT with the WGS84 SRID, the form Postgres
// coerces directly into a geometry column on insert.
func EWKT(g orb.Geometry) string {
	if g == nil {
		return ""
	}
	return "SRID=4326;" + wkt.MarshalString(g)
}
