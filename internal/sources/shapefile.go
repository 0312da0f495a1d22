package sources

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// Feature is one shapefile record: its geometry (in whatever grid the file
// was delivered in) plus the raw DBF attributes.
type Feature struct {
	Geometry   orb.Geometry
	Attributes Row
}

// ReadShapefile loads all records of a shapefile. Unsupported shape types
// are skipped; a record with a null shape is kept with a nil geometry so
// the caller can count it as an error rather than silently losing it.
func ReadShapefile(path string) ([]Feature, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", path, err)
	}
	defer reader.Close()

	fields := reader.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}

	var feats []Feature
	for reader.Next() {
		n, shape := reader.Shape()

		var geometry orb.Geometry
		switch s := shape.(type) {
		case *shp.Null:
			geometry = nil
		case *shp.Point:
			geometry = orb.Point{s.X, s.Y}
		case *shp.PointZ:
			geometry = orb.Point{s.X, s.Y}
		case *shp.PointM:
			geometry = orb.Point{s.X, s.Y}
		case *shp.PolyLine:
			geometry = polyLineToMultiLine(s.NumParts, s.NumPoints, s.Parts, s.Points)
		case *shp.PolyLineZ:
			geometry = polyLineToMultiLine(s.NumParts, s.NumPoints, s.Parts, s.Points)
		case *shp.Polygon:
			geometry = polygonToMultiPolygon(s.NumParts, s.NumPoints, s.Parts, s.Points)
		case *shp.PolygonZ:
			geometry = polygonToMultiPolygon(s.NumParts, s.NumPoints, s.Parts, s.Points)
		default:
			continue
		}

		attrs := Row{}
		for i, name := range names {
			attrs[name] = reader.ReadAttribute(n, i)
		}
		feats = append(feats, Feature{Geometry: geometry, Attributes: attrs})
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %s: %w", path, err)
	}
	return feats, nil
}

func polyLineToMultiLine(numParts, numPoints int32, parts []int32, points []shp.Point) orb.MultiLineString {
	var multi orb.MultiLineString
	for i := int32(0); i < numParts; i++ {
		start := parts[i]
		end := numPoints
		if i < numParts-1 {
			end = parts[i+1]
		}
		var line orb.LineString
		for j := start; j < end; j++ {
			line = append(line, orb.Point{points[j].X, points[j].Y})
		}
		if len(line) > 0 {
			multi = append(multi, line)
		}
	}
	return multi
}

// polygonToMultiPolygon treats every part as its own single-ring polygon.
// Hole detection by ring winding is not needed for bounding-box filtering
// or display, and the source data rarely carries holes.
func polygonToMultiPolygon(numParts, numPoints int32, parts []int32, points []shp.Point) orb.MultiPolygon {
	var multi orb.MultiPolygon
	for i := int32(0); i < numParts; i++ {
		start := parts[i]
		end := numPoints
		if i < numParts-1 {
			end = parts[i+1]
		}
		var ring orb.Ring
		for j := start; j < end; j++ {
			ring = append(ring, orb.Point{points[j].X, points[j].Y})
		}
		if len(ring) > 0 {
			multi = append(multi, orb.Polygon{ring})
		}
	}
	return multi
}
