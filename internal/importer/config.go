// Package importer contains the per-layer importers and the orchestrator
// that sequences a full atlas import run.
package importer

import (
	"os"
	"strings"
)

// Caps limits how many features a single large-polygon source file may
// contribute. Zero means unlimited. Capping is a hard truncation after N
// processed records, not a sample; it exists to bound runtime and row
// count on nationwide datasets in constrained environments.
type Caps struct {
	Groundwater  int
	Conservation int
	Settlement   int
}

// ProductionCaps are the limits applied when ATLAS_RESOURCE_MODE=production.
var ProductionCaps = Caps{
	Groundwater:  5000,
	Conservation: 2000,
	Settlement:   2000,
}

// Thresholds above which polygon geometries get a simplified variant.
const (
	groundwaterSimplifyThreshold  = 1000
	conservationSimplifyThreshold = 500
	settlementSimplifyThreshold   = 500
	votingSimplifyThreshold       = 500
)

// SimplifyTolerance is the Douglas-Peucker tolerance in degrees.
const SimplifyTolerance = 0.0001

// Config carries everything an import run needs. The resource-mode caps
// are resolved here, once, so the pipeline itself never consults the
// environment.
type Config struct {
	DatabaseURL string
	DataDir     string
	Caps        Caps

	// BoundaryFiles are the shapefiles (relative to DataDir) whose
	// combined bounding box defines the area of interest.
	BoundaryFiles []string
}

// DefaultBoundaryFiles lists the delivered study-area shapefiles.
var DefaultBoundaryFiles = []string{
	"shapefiles/study_area.shp",
	"shapefiles/district_boundary.shp",
}

// LoadFromEnv loads run configuration from environment variables.
//
// Environment variables:
//   - DATABASE_URL: Postgres DSN (required)
//   - ATLAS_DATA_DIR: root of the source data tree (default "data")
//   - ATLAS_RESOURCE_MODE: "production" applies the feature caps;
//     anything else imports unrestricted
func LoadFromEnv() Config {
	dataDir := strings.TrimSpace(os.Getenv("ATLAS_DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	var caps Caps
	if strings.EqualFold(strings.TrimSpace(os.Getenv("ATLAS_RESOURCE_MODE")), "production") {
		caps = ProductionCaps
	}

	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DataDir:       dataDir,
		Caps:          caps,
		BoundaryFiles: DefaultBoundaryFiles,
	}
}
