package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/co2atlas/atlas-backend/internal/models"
)

// EnsureSchema creates the named schema if it does not exist.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}

// Bootstrap prepares everything the import pipeline depends on: the atlas
// schema, the PostGIS and uuid extensions, the destination tables, GIST
// indexes on every geometry column, and the choropleth materialized view.
// All statements are idempotent; Bootstrap runs at the start of every
// import.
func Bootstrap(d *gorm.DB) error {
	for _, ext := range []string{"postgis", `"uuid-ossp"`} {
		if err := d.Exec(`CREATE EXTENSION IF NOT EXISTS ` + ext).Error; err != nil {
			return fmt.Errorf("create extension %s: %w", ext, err)
		}
	}
	if err := EnsureSchema(d, "atlas"); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if err := d.AutoMigrate(
		&models.CO2Source{},
		&models.Landfill{},
		&models.GravelPit{},
		&models.WastewaterPlant{},
		&models.GasStorageSite{},
		&models.GasDistributionPoint{},
		&models.GasCompressorStation{},
		&models.GasPipeline{},
		&models.Highway{},
		&models.Railway{},
		&models.Boundary{},
		&models.GroundwaterProtectionArea{},
		&models.ConservationArea{},
		&models.SettlementArea{},
		&models.VotingDistrict{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	spatialIndexes := map[string]string{
		"idx_co2_sources_geom":         "atlas.co2_sources",
		"idx_landfills_geom":           "atlas.landfills",
		"idx_gravel_pits_geom":         "atlas.gravel_pits",
		"idx_wastewater_plants_geom":   "atlas.wastewater_plants",
		"idx_gas_storage_geom":         "atlas.gas_storage_sites",
		"idx_gas_distribution_geom":    "atlas.gas_distribution_points",
		"idx_gas_compressors_geom":     "atlas.gas_compressor_stations",
		"idx_gas_pipelines_geom":       "atlas.gas_pipelines",
		"idx_highways_geom":            "atlas.highways",
		"idx_railways_geom":            "atlas.railways",
		"idx_boundaries_geom":          "atlas.boundaries",
		"idx_groundwater_geom":         "atlas.groundwater_protection_areas",
		"idx_conservation_geom":        "atlas.conservation_areas",
		"idx_settlement_geom":          "atlas.settlement_areas",
		"idx_voting_districts_geom":    "atlas.voting_districts",
	}
	for name, table := range spatialIndexes {
		stmt := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING GIST (geometry)`, name, table)
		if err := d.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}

	matview := `
		CREATE MATERIALIZED VIEW IF NOT EXISTS atlas.voting_choropleth AS
		SELECT district_code,
		       name,
		       left_green_combined,
		       color,
		       has_voting_data,
		       ST_AsGeoJSON(COALESCE(simplified_geometry, geometry)) AS geojson
		FROM atlas.voting_districts
	`
	if err := d.Exec(matview).Error; err != nil {
		return fmt.Errorf("create choropleth view: %w", err)
	}
	return nil
}

// RefreshChoropleth rebuilds the voting choropleth materialized view after
// a completed import.
func RefreshChoropleth(d *gorm.DB) error {
	return d.Exec(`REFRESH MATERIALIZED VIEW atlas.voting_choropleth`).Error
}
