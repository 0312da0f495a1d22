package importer

import (
	"log"
	"path/filepath"

	"github.com/co2atlas/atlas-backend/internal/geo"
	"github.com/co2atlas/atlas-backend/internal/models"
	"github.com/co2atlas/atlas-backend/internal/sources"
)

// ProminentCO2Threshold marks the annual tonnage above which a CO₂ source
// gets the prominent (larger) pin. Strictly greater than: 50000 exactly is
// not prominent.
const ProminentCO2Threshold = 50000.0

// ProminentCO2 reports whether a source's annual tonnage makes it
// prominent on the map.
func ProminentCO2(totalT float64) bool {
	return totalT > ProminentCO2Threshold
}

// Per-theme pin defaults.
var (
	co2Style        = models.Style{Color: "#d73027", Size: 8, Opacity: 0.9}
	landfillStyle   = models.Style{Color: "#8c510a", Size: 7, Opacity: 0.85}
	gravelPitStyle  = models.Style{Color: "#bf812d", Size: 6, Opacity: 0.85}
	wastewaterStyle = models.Style{Color: "#35978f", Size: 7, Opacity: 0.85}
)

const co2ProminentSize = 12

// Column-name candidates shared by the tabular point sources. The exports
// disagree on header language and casing, so each lookup tries the known
// variants in order.
var (
	lonColumns = []string{"lon", "longitude", "lng", "x", "rechtswert"}
	latColumns = []string{"lat", "latitude", "y", "hochwert"}
)

// ImportCO2Sources loads the CO₂ emitter inventory CSV.
func (imp *Importer) ImportCO2Sources() LayerStats {
	stats := LayerStats{Layer: "co2_sources"}
	rows, err := sources.ReadCSV(filepath.Join(imp.Cfg.DataDir, "csv", "co2_sources.csv"))
	if err != nil {
		log.Printf("[co2_sources] source unavailable: %v", err)
		return stats
	}

	for _, row := range rows {
		pt, oc := imp.rowPoint(row)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}

		total := row.Float("total_co2_t", "co2_t", "emissionen_t")
		rec := models.CO2Source{
			Name:        row.Get("name", "anlage", "facility"),
			Operator:    row.Get("operator", "betreiber"),
			Sector:      row.Get("sector", "branche"),
			TotalCO2T:   total,
			IsProminent: ProminentCO2(total),
			Style:       co2Style,
			Geometry:    geo.EWKT(pt),
			Properties:  propsJSON(row),
		}
		if rec.IsProminent {
			rec.Size = co2ProminentSize
		}

		if err := imp.DB.Create(&rec).Error; err != nil {
			log.Printf("[co2_sources] insert %q: %v", rec.Name, err)
			stats.Errors++
			continue
		}
		stats.Imported++
	}
	return stats
}

// ImportLandfills loads the landfill register CSV.
func (imp *Importer) ImportLandfills() LayerStats {
	stats := LayerStats{Layer: "landfills"}
	rows, err := sources.ReadCSV(filepath.Join(imp.Cfg.DataDir, "csv", "landfills.csv"))
	if err != nil {
		log.Printf("[landfills] source unavailable: %v", err)
		return stats
	}

	for _, row := range rows {
		pt, oc := imp.rowPoint(row)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}

		rec := models.Landfill{
			Name:       row.Get("name", "deponie"),
			Operator:   row.Get("operator", "betreiber"),
			WasteType:  row.Get("waste_type", "abfallart"),
			CapacityT:  row.Float("capacity_t", "kapazitaet_t"),
			Style:      landfillStyle,
			Geometry:   geo.EWKT(pt),
			Properties: propsJSON(row),
		}

		if err := imp.DB.Create(&rec).Error; err != nil {
			log.Printf("[landfills] insert %q: %v", rec.Name, err)
			stats.Errors++
			continue
		}
		stats.Imported++
	}
	return stats
}

// ImportGravelPits loads the raw-materials extraction sites CSV.
func (imp *Importer) ImportGravelPits() LayerStats {
	stats := LayerStats{Layer: "gravel_pits"}
	rows, err := sources.ReadCSV(filepath.Join(imp.Cfg.DataDir, "csv", "gravel_pits.csv"))
	if err != nil {
		log.Printf("[gravel_pits] source unavailable: %v", err)
		return stats
	}

	for _, row := range rows {
		pt, oc := imp.rowPoint(row)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}

		rec := models.GravelPit{
			Name:       row.Get("name", "abbaustaette"),
			Operator:   row.Get("operator", "betreiber"),
			Material:   row.Get("material", "rohstoff"),
			Status:     row.Get("status"),
			Style:      gravelPitStyle,
			Geometry:   geo.EWKT(pt),
			Properties: propsJSON(row),
		}

		if err := imp.DB.Create(&rec).Error; err != nil {
			log.Printf("[gravel_pits] insert %q: %v", rec.Name, err)
			stats.Errors++
			continue
		}
		stats.Imported++
	}
	return stats
}

// ImportWastewaterPlants loads the treatment-plant spreadsheet.
func (imp *Importer) ImportWastewaterPlants() LayerStats {
	stats := LayerStats{Layer: "wastewater_plants"}
	rows, err := sources.ReadXLSX(filepath.Join(imp.Cfg.DataDir, "xlsx", "wastewater_plants.xlsx"))
	if err != nil {
		log.Printf("[wastewater_plants] source unavailable: %v", err)
		return stats
	}

	for _, row := range rows {
		pt, oc := imp.rowPoint(row)
		switch oc {
		case outcomeInvalid:
			stats.Errors++
			continue
		case outcomeFiltered:
			stats.Filtered++
			continue
		}

		rec := models.WastewaterPlant{
			Name:       row.Get("name", "klaeranlage"),
			Operator:   row.Get("operator", "betreiber"),
			CapacityPE: row.Float("capacity_pe", "ew", "ausbaugroesse"),
			Style:      wastewaterStyle,
			Geometry:   geo.EWKT(pt),
			Properties: propsJSON(row),
		}

		if err := imp.DB.Create(&rec).Error; err != nil {
			log.Printf("[wastewater_plants] insert %q: %v", rec.Name, err)
			stats.Errors++
			continue
		}
		stats.Imported++
	}
	return stats
}
