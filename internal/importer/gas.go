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

// gasGeometryKind declares whether a gas source file carries line or point
// features.
type gasGeometryKind int

const (
	gasLine gasGeometryKind = iota
	gasPoint
)

// gasSource maps one delivered shapefile onto its destination table. The
// gas network arrives as four separate files sharing attribute
// conventions, so a single routine dispatches over this table.
type gasSource struct {
	file  string
	kind  gasGeometryKind
	layer string
}

var gasSources = []gasSource{
	{"shapefiles/gas_pipelines.shp", gasLine, "gas_pipelines"},
	{"shapefiles/gas_storage.shp", gasPoint, "gas_storage_sites"},
	{"shapefiles/gas_distribution.shp", gasPoint, "gas_distribution_points"},
	{"shapefiles/gas_compressors.shp", gasPoint, "gas_compressor_stations"},
}

var (
	gasLineStyle  = models.Style{Color: "#fdae61", Size: 3, Opacity: 0.8}
	gasPointStyle = models.Style{Color: "#f46d43", Size: 7, Opacity: 0.9}
)

const lineSimplifyThreshold = 1000

// ImportGasInfrastructure walks the declarative gas source table and loads
// each file into its destination, returning one stats value per layer.
func (imp *Importer) ImportGasInfrastructure() []LayerStats {
	var all []LayerStats
	for _, src := range gasSources {
		all = append(all, imp.importGasFile(src))
	}
	return all
}

func (imp *Importer) importGasFile(src gasSource) LayerStats {
	stats := LayerStats{Layer: src.layer}
	feats, err := sources.ReadShapefile(filepath.Join(imp.Cfg.DataDir, src.file))
	if err != nil {
		log.Printf("[%s] source unavailable: %v", src.layer, err)
		return stats
	}

	imp.eachPrepared(feats, 0, &stats, func(f sources.Feature, g orb.Geometry) error {
		switch src.kind {
		case gasLine:
			return imp.insertGasLine(f, g)
		default:
			return imp.insertGasPoint(src.layer, f, g)
		}
	})
	return stats
}

func (imp *Importer) insertGasLine(f sources.Feature, g orb.Geometry) error {
	line, ok := asMultiLineString(g)
	if !ok {
		return fmt.Errorf("expected line geometry, got %T", g)
	}
	rec := models.GasPipeline{
		Name:               f.Attributes.Get("name", "leitung"),
		Operator:           f.Attributes.Get("operator", "betreiber"),
		PressureBar:        f.Attributes.Float("pressure_bar", "druck"),
		Style:              gasLineStyle,
		Geometry:           geo.EWKT(line),
		SimplifiedGeometry: simplifiedEWKT(line, lineSimplifyThreshold),
		Properties:         propsJSON(f.Attributes),
	}
	return imp.DB.Create(&rec).Error
}

func (imp *Importer) insertGasPoint(layer string, f sources.Feature, g orb.Geometry) error {
	pt, ok := g.(orb.Point)
	if !ok {
		return fmt.Errorf("expected point geometry, got %T", g)
	}

	name := f.Attributes.Get("name", "anlage")
	operator := f.Attributes.Get("operator", "betreiber")

	switch layer {
	case "gas_storage_sites":
		rec := models.GasStorageSite{
			Name:        name,
			Operator:    operator,
			CapacityMCM: f.Attributes.Float("capacity_mcm", "speichervolumen"),
			Style:       gasPointStyle,
			Geometry:    geo.EWKT(pt),
			Properties:  propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	case "gas_distribution_points":
		rec := models.GasDistributionPoint{
			Name:        name,
			Operator:    operator,
			StationType: f.Attributes.Get("station_type", "typ"),
			Style:       gasPointStyle,
			Geometry:    geo.EWKT(pt),
			Properties:  propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	case "gas_compressor_stations":
		rec := models.GasCompressorStation{
			Name:       name,
			Operator:   operator,
			PowerMW:    f.Attributes.Float("power_mw", "leistung"),
			Style:      gasPointStyle,
			Geometry:   geo.EWKT(pt),
			Properties: propsJSON(f.Attributes),
		}
		return imp.DB.Create(&rec).Error
	default:
		return fmt.Errorf("unknown gas layer %q", layer)
	}
}
