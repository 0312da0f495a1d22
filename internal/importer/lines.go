package importer

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/paulmach/orb"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/models"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

var (
	highwayStyle = models.Style{Color: "#636363", Size: 3, Opacity: 0.8}
	railwayStyle = models.Style{Color: "#54278f", Size: 2, Opacity: 0.8}
)

// ImportHighways loads the nationwide road network shapefile. The area
// filter carries most of the weight here: the source covers the whole
// country, the atlas only needs the study region.
func (imp *Importer) ImportHighways() LayerStats {
	stats := LayerStats{Layer: "highways"}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, "shapefiles", "highways.shp"))
	if err != nil {
		log.Printf("[highways] source unavailable: %v", err)
		return stats
	}

	imp.eachPrepared(feats, 0, &stats, func(f sources.Feature, g orb.Geometry) error {
		line, ok := asMultiLineString(g)
		if !ok {
			return fmt.Errorf("expected line geometry, got %T", g)
		}
		rec := models.Highway{
			Name:               f.Attributes.Get("name", "strasse"),
			Ref:                f.Attributes.Get("ref", "nummer"),
			Category:           f.Attributes.Get("category", "kategorie"),
			Style:              highwayStyle,
			Geometry:           geo.EWKT(line),
			SimplifiedGeometry: simplifiedEWKT(line, lineSimplifyThreshold),
			Properties:         propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	})
	return stats
}

// ImportRailways loads the nationwide rail network shapefile.
func (imp *Importer) ImportRailways() LayerStats {
	stats := LayerStats{Layer: "railways"}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, "shapefiles", "railways.shp"))
	if err != nil {
		log.Printf("[railways] source unavailable: %v", err)
		return stats
	}

	imp.eachPrepared(feats, 0, &stats, func(f sources.Feature, g orb.Geometry) error {
		line, ok := asMultiLineString(g)
		if !ok {
			return fmt.Errorf("expected line geometry, got %T", g)
		}
		rec := models.Railway{
			Name:               f.Attributes.Get("name", "strecke"),
			Operator:           f.Attributes.Get("operator", "betreiber"),
			LineType:           f.Attributes.Get("line_type", "typ"),
			Style:              railwayStyle,
			Geometry:           geo.EWKT(line),
			SimplifiedGeometry: simplifiedEWKT(line, lineSimplifyThreshold),
			Properties:         propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	})
	return stats
}
