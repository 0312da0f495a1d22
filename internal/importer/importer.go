package importer

import (
	"encoding/json"
	"log"

	"github.com/paulmach/orb"
	"gorm.io/gorm"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

// Importer holds the collaborators every layer import shares: the single
// database connection, the candidate-grid transformer, and the area bounds
// loaded at the start of the run.
type Importer struct {
	DB     *gorm.DB
	Cfg    Config
	Trans  *geo.Transformer
	Bounds *AreaBounds
}

// New builds an Importer with the default Austrian grid candidates and
// unset (pass-everything) bounds. The orchestrator replaces Bounds after
// loading the boundary shapefiles.
func New(conn *gorm.DB, cfg Config) *Importer {
	return &Importer{
		DB:     conn,
		Cfg:    cfg,
		Trans:  geo.NewTransformer(),
		Bounds: &AreaBounds{},
	}
}

// outcome classifies one record's pass through the shared geometry steps.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeInvalid
	outcomeFiltered
)

// prepare runs the shared per-record steps: reproject to WGS84, validate,
// area-filter. A geometry that fails reprojection keeps its grid
// coordinates and is rejected by the validity gate here.
func (imp *Importer) prepare(g orb.Geometry) (orb.Geometry, outcome) {
	if g == nil {
		return nil, outcomeInvalid
	}
	wgs := imp.Trans.Geometry(g)
	if !geo.IsValidWGS84(wgs) {
		return nil, outcomeInvalid
	}
	if !imp.Bounds.Intersects(wgs) {
		return nil, outcomeFiltered
	}
	return wgs, outcomeOK
}

// rowPoint extracts a coordinate pair from a tabular record and runs it
// through the point steps. A record whose coordinate cells are missing or
// non-numeric is a structural error, not a point at (0, 0).
func (imp *Importer) rowPoint(row sources.Row) (orb.Point, outcome) {
	x, okX := row.FloatOK(lonColumns...)
	y, okY := row.FloatOK(latColumns...)
	if !okX || !okY {
		return orb.Point{}, outcomeInvalid
	}
	return imp.preparePoint(x, y)
}

// preparePoint is prepare for a bare coordinate pair.
func (imp *Importer) preparePoint(x, y float64) (orb.Point, outcome) {
	lon, lat := imp.Trans.Point(x, y)
	if !geo.ValidWGS84(lon, lat) {
		return orb.Point{}, outcomeInvalid
	}
	if !imp.Bounds.Contains(lon, lat) {
		return orb.Point{}, outcomeFiltered
	}
	return orb.Point{lon, lat}, outcomeOK
}

// eachPrepared drives shapefile features through prepare and hands accepted
// WGS84 geometries to emit, updating stats along the way. A non-positive
// limit imports every feature; otherwise processing stops after limit
// records (hard truncation). Emit failures count as errors and never abort
// the loop.
func (imp *Importer) eachPrepared(feats []sources.Feature, limit int, stats *LayerStats,
	emit func(sources.Feature, orb.Geometry) error) {

	for i, f := range feats {
		if limit > 0 && i >= limit {
			log.Printf("[%s] feature cap %d reached, truncating source", stats.Layer, limit)
			break
		}
		g, oc := imp.prepare(f.Geometry)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}
		if err := emit(f, g); err != nil {
			log.Printf("[%s] record %d: %v", stats.Layer, i, err)
			stats.Errors++
			continue
		}
		stats.Imported++
	}
}

// propsJSON marshals the raw attribute bag for the jsonb column.
func propsJSON(attrs sources.Row) string {
	if len(attrs) == 0 {
		return "{}"
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// asMultiLineString coerces line-ish geometries into the multi-line form
// the line tables store.
func asMultiLineString(g orb.Geometry) (orb.MultiLineString, bool) {
	switch t := g.(type) {
	case orb.MultiLineString:
		return t, true
	case orb.LineString:
		return orb.MultiLineString{t}, true
	default:
		return nil, false
	}
}

// asMultiPolygon coerces polygon-ish geometries into the multi-polygon
// form the polygon tables store.
func asMultiPolygon(g orb.Geometry) (orb.MultiPolygon, bool) {
	switch t := g.(type) {
	case orb.MultiPolygon:
		return t, true
	case orb.Polygon:
		return orb.MultiPolygon{t}, true
	default:
		return nil, false
	}
}

// simplifiedEWKT returns the EWKT of the simplified variant when the
// geometry exceeded the threshold, nil otherwise.
func simplifiedEWKT(g orb.Geometry, threshold int) *string {
	simplified, did := geo.SimplifyOver(g, threshold, SimplifyTolerance)
	if !did {
		return nil
	}
	s := geo.EWKT(simplified)
	return &s
}
