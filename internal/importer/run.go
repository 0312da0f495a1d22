package importer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/co2atlas/atlas-backend/internal/db"
)

// destinationTables lists every table the pipeline owns, truncated CASCADE
// before each run so repeated imports on unchanged sources produce
// identical row counts.
var destinationTables = []string{
	"atlas.co2_sources",
	"atlas.landfills",
	"atlas.gravel_pits",
	"atlas.wastewater_plants",
	"atlas.gas_storage_sites",
	"atlas.gas_distribution_points",
	"atlas.gas_compressor_stations",
	"atlas.gas_pipelines",
	"atlas.highways",
	"atlas.railways",
	"atlas.boundaries",
	"atlas.groundwater_protection_areas",
	"atlas.conservation_areas",
	"atlas.settlement_areas",
	"atlas.voting_districts",
}

// Run executes a full import: connect, bootstrap, load bounds, truncate,
// import every layer in dependency order, rebuild derived state, print the
// summary. Only the connection (and bootstrap/truncation, without which
// nothing downstream is meaningful) can fail the run; every layer degrades
// per file and per record.
func Run(cfg Config) error {
	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := db.Bootstrap(conn); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}

	checkSourceDirs(cfg.DataDir)

	imp := New(conn, cfg)
	imp.Bounds = LoadAreaBounds(cfg.DataDir, cfg.BoundaryFiles, imp.Trans)

	if err := truncateAll(conn); err != nil {
		return fmt.Errorf("truncate destination tables: %w", err)
	}

	var report Report

	report.Add(imp.ImportBoundaries())

	votingStats, noDataCodes := imp.ImportVotingDistricts()
	report.Add(votingStats)

	report.Add(imp.ImportCO2Sources())
	report.Add(imp.ImportLandfills())
	report.Add(imp.ImportGravelPits())
	report.Add(imp.ImportWastewaterPlants())

	for _, s := range imp.ImportGasInfrastructure() {
		report.Add(s)
	}

	report.Add(imp.ImportGroundwaterProtection())
	report.Add(imp.ImportConservationAreas())
	report.Add(imp.ImportSettlementAreas())

	report.Add(imp.ImportHighways())
	report.Add(imp.ImportRailways())

	if err := db.RefreshChoropleth(conn); err != nil {
		log.Printf("[choropleth] refresh failed: %v", err)
	}
	recomputeVotingFlags(conn, noDataCodes)

	report.Log()
	return nil
}

// checkSourceDirs logs which expected source directories exist. Missing
// directories are informational only; the per-layer readers handle absent
// files themselves.
func checkSourceDirs(dataDir string) {
	for _, sub := range []string{"", "csv", "xlsx", "shapefiles"} {
		path := filepath.Join(dataDir, sub)
		if _, err := os.Stat(path); err != nil {
			log.Printf("[sources] directory %s not found", path)
		}
	}
}

// truncateAll wipes every destination table in one CASCADE statement.
func truncateAll(conn *gorm.DB) error {
	stmt := "TRUNCATE TABLE "
	for i, t := range destinationTables {
		if i > 0 {
			stmt += ", "
		}
		stmt += t
	}
	stmt += " CASCADE"
	return conn.Exec(stmt).Error
}

// recomputeVotingFlags re-derives the geometry-validity flag from PostGIS
// and clears the has-data flag (and color) for the districts the importer
// saw without results. Both are bulk statements; failures are logged, not
// fatal — the per-row values written during import remain usable.
func recomputeVotingFlags(conn *gorm.DB, noDataCodes []string) {
	err := conn.Exec(`
		UPDATE atlas.voting_districts
		SET geometry_valid = (geometry IS NOT NULL AND ST_IsValid(geometry))
	`).Error
	if err != nil {
		log.Printf("[voting_districts] geometry validity recompute failed: %v", err)
	}

	if len(noDataCodes) == 0 {
		return
	}
	err = conn.Exec(`
		UPDATE atlas.voting_districts
		SET has_voting_data = false, color = ?
		WHERE district_code = ANY(?)
	`, noVotingDataColor, pq.Array(noDataCodes)).Error
	if err != nil {
		log.Printf("[voting_districts] has-data recompute failed: %v", err)
	}
}
