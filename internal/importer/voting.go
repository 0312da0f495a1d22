package importer

import (
	"fmt"
	"log"
	"path/filepath"

	"gorm.io/gorm/clause"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/models"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

// votingShapefile is the cleaned commune shapefile; the delivered file has
// its umlaut column names already rewritten to ASCII (SPO_perc and so on).
const votingShapefile = "shapefiles/updated_commune_cleaned.shp"

// noVotingDataColor is the neutral gray for districts without results.
const noVotingDataColor = "#cccccc"

// ChoroplethColor buckets a left+green percentage into the fixed display
// ramp: gray for no data, pale yellow through dark green at ≥60%.
func ChoroplethColor(pct float64) string {
	switch {
	case pct <= 0:
		return noVotingDataColor
	case pct < 5:
		return "#ffffe5"
	case pct < 10:
		return "#f7fcb9"
	case pct < 15:
		return "#d9f0a3"
	case pct < 20:
		return "#addd8e"
	case pct < 25:
		return "#78c679"
	case pct < 30:
		return "#41ab5d"
	case pct < 40:
		return "#238443"
	case pct < 60:
		return "#006837"
	default:
		return "#004529"
	}
}

// LeftGreenCombined derives the choropleth metric from the three party
// percentages it aggregates.
func LeftGreenCombined(spo, gruene, kpoe float64) float64 {
	return spo + gruene + kpoe
}

// HasVotingData reports whether any party percentage is positive. Communes
// missing from the election export carry all-zero columns.
func HasVotingData(pcts ...float64) bool {
	for _, p := range pcts {
		if p > 0 {
			return true
		}
	}
	return false
}

// VotingDistrictFromFeature maps one commune feature (already reprojected
// and validated) to its row, deriving the combined percentage, the
// has-data flag, and the choropleth color.
func VotingDistrictFromFeature(f sources.Feature, geometry string, simplified *string) models.VotingDistrict {
	spo := f.Attributes.Float("SPO_perc")
	oevp := f.Attributes.Float("OEVP_perc")
	fpoe := f.Attributes.Float("FPOE_perc")
	gruene := f.Attributes.Float("GRUENE_perc")
	kpoe := f.Attributes.Float("KPOE_perc")
	neos := f.Attributes.Float("NEOS_perc")

	combined := LeftGreenCombined(spo, gruene, kpoe)
	hasData := HasVotingData(spo, oevp, fpoe, gruene, kpoe, neos)

	color := noVotingDataColor
	if hasData {
		color = ChoroplethColor(combined)
	}

	return models.VotingDistrict{
		DistrictCode:       f.Attributes.Get("gkz", "GKZ", "code", "id"),
		Name:               f.Attributes.Get("name", "gemeinde", "PG"),
		SPOPct:             spo,
		OEVPPct:            oevp,
		FPOEPct:            fpoe,
		GruenePct:          gruene,
		KPOEPct:            kpoe,
		NEOSPct:            neos,
		LeftGreenCombined:  combined,
		HasVotingData:      hasData,
		Color:              color,
		GeometryValid:      true,
		Geometry:           geometry,
		SimplifiedGeometry: simplified,
	}
}

// ImportVotingDistricts loads the commune polygons with their election
// results, upserting on the district code. It returns the codes imported
// without any voting data so the orchestrator can recompute the has-data
// flags in bulk at the end of the run.
func (imp *Importer) ImportVotingDistricts() (LayerStats, []string) {
	stats := LayerStats{Layer: "voting_districts"}
	var noDataCodes []string

	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, votingShapefile))
	if err != nil {
		log.Printf("[voting_districts] source unavailable: %v", err)
		return stats, nil
	}

	for i, f := range feats {
		g, oc := imp.prepare(f.Geometry)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}
		poly, ok := asMultiPolygon(g)
		if !ok {
			stats.Errors++
			continue
		}

		rec := VotingDistrictFromFeature(f, geo.EWKT(poly), simplifiedEWKT(poly, votingSimplifyThreshold))
		rec.Properties = propsJSON(f.Attributes)
		if rec.DistrictCode == "" {
			rec.DistrictCode = fmt.Sprintf("unknown-%d", i)
		}

		err := imp.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "district_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "spo_pct", "oevp_pct", "fpoe_pct", "gruene_pct",
				"kpoe_pct", "neos_pct", "left_green_combined",
				"has_voting_data", "color", "geometry_valid", "geometry",
				"simplified_geometry", "properties",
			}),
		}).Create(&rec).Error
		if err != nil {
			log.Printf("[voting_districts] upsert %q: %v", rec.DistrictCode, err)
			stats.Errors++
			continue
		}
		if !rec.HasVotingData {
			noDataCodes = append(noDataCodes, rec.DistrictCode)
		}
		stats.Imported++
	}
	return stats, noDataCodes
}
