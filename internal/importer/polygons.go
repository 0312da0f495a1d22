package importer

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/paulmach/orb"
	"gorm.io/gorm/clause"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/models"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

var (
	boundaryStyle     = models.Style{Color: "#252525", Size: 2, Opacity: 1}
	groundwaterStyle  = models.Style{Color: "#2b8cbe", Opacity: 0.4}
	conservationStyle = models.Style{Color: "#31a354", Opacity: 0.4}
	settlementStyle   = models.Style{Color: "#969696", Opacity: 0.4}
)

// ImportBoundaries loads the study-area boundary shapefiles. Boundaries
// upsert on their code so re-imports update in place; the area filter does
// not apply to them (they define it).
func (imp *Importer) ImportBoundaries() LayerStats {
	stats := LayerStats{Layer: "boundaries"}
	for _, rel := range imp.Cfg.BoundaryFiles {
		feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, rel))
		if err != nil {
			log.Printf("[boundaries] source %s unavailable: %v", rel, err)
			continue
		}

		base := filepath.Base(rel)
		for i, f := range feats {
			g := imp.Trans.Geometry(f.Geometry)
			if !geo.IsValidWGS84(g) {
				stats.Errors++
				continue
			}
			poly, ok := asMultiPolygon(g)
			if !ok {
				stats.Errors++
				continue
			}

			code := f.Attributes.Get("code", "gkz", "id")
			if code == "" {
				code = fmt.Sprintf("%s-%d", base, i)
			}
			rec := models.Boundary{
				Code:       code,
				Name:       f.Attributes.Get("name", "gemeinde", "bezirk"),
				Style:      boundaryStyle,
				Geometry:   geo.EWKT(poly),
				Properties: propsJSON(f.Attributes),
			}
			err := imp.DB.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "geometry", "properties",
				}),
			}).Create(&rec).Error
			if err != nil {
				log.Printf("[boundaries] upsert %q: %v", code, err)
				stats.Errors++
				continue
			}
			stats.Imported++
		}
	}
	return stats
}

// ImportGroundwaterProtection loads the groundwater protection polygons,
// the heaviest source layer. Production caps truncate each file; shapes
// over the vertex threshold get a simplified variant.
func (imp *Importer) ImportGroundwaterProtection() LayerStats {
	stats := LayerStats{Layer: "groundwater_protection_areas"}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, "shapefiles", "groundwater_protection.shp"))
	if err != nil {
		log.Printf("[groundwater_protection_areas] source unavailable: %v", err)
		return stats
	}

	imp.eachPrepared(feats, imp.Cfg.Caps.Groundwater, &stats, func(f sources.Feature, g orb.Geometry) error {
		poly, ok := asMultiPolygon(g)
		if !ok {
			return fmt.Errorf("expected polygon geometry, got %T", g)
		}
		rec := models.GroundwaterProtectionArea{
			Name:               f.Attributes.Get("name", "schutzgebiet"),
			ProtectionType:     f.Attributes.Get("protection_type", "typ", "zone"),
			GeometryValid:      true,
			Style:              groundwaterStyle,
			Geometry:           geo.EWKT(poly),
			SimplifiedGeometry: simplifiedEWKT(poly, groundwaterSimplifyThreshold),
			Properties:         propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	})
	return stats
}

// ImportConservationAreas loads the protected-areas polygons.
func (imp *Importer) ImportConservationAreas() LayerStats {
	stats := LayerStats{Layer: "conservation_areas"}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, "shapefiles", "conservation_areas.shp"))
	if err != nil {
		log.Printf("[conservation_areas] source unavailable: %v", err)
		return stats
	}

	imp.eachPrepared(feats, imp.Cfg.Caps.Conservation, &stats, func(f sources.Feature, g orb.Geometry) error {
		poly, ok := asMultiPolygon(g)
		if !ok {
			return fmt.Errorf("expected polygon geometry, got %T", g)
		}
		rec := models.ConservationArea{
			Name:               f.Attributes.Get("name", "gebiet"),
			AreaType:           f.Attributes.Get("area_type", "typ"),
			GeometryValid:      true,
			Style:              conservationStyle,
			Geometry:           geo.EWKT(poly),
			SimplifiedGeometry: simplifiedEWKT(poly, conservationSimplifyThreshold),
			Properties:         propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	})
	return stats
}

// ImportSettlementAreas loads the built-up land polygons.
func (imp *Importer) ImportSettlementAreas() LayerStats {
	stats := LayerStats{Layer: "settlement_areas"}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, "shapefiles", "settlement_areas.shp"))
	if err != nil {
		log.Printf("[settlement_areas] source unavailable: %v", err)
		return stats
	}

	imp.eachPrepared(feats, imp.Cfg.Caps.Settlement, &stats, func(f sources.Feature, g orb.Geometry) error {
		poly, ok := asMultiPolygon(g)
		if !ok {
			return fmt.Errorf("expected polygon geometry, got %T", g)
		}
		rec := models.SettlementArea{
			Name:               f.Attributes.Get("name", "ortschaft"),
			GeometryValid:      true,
			Style:              settlementStyle,
			Geometry:           geo.EWKT(poly),
			SimplifiedGeometry: simplifiedEWKT(poly, settlementSimplifyThreshold),
			Properties:         propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	})
	return stats
}
