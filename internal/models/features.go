// Package models defines the destination tables of the import pipeline.
// Geometry columns are PostGIS types written as EWKT strings; the original
// source attributes travel alongside the normalized columns in a jsonb bag
// so every row stays traceable to its raw record.
package models

import "github.com/google/uuid"

// Style carries the per-feature rendering defaults the map front end reads.
type Style struct {
	Color   string  `gorm:"size:16" json:"color"`
	Size    int     `json:"size"`
	Opacity float64 `json:"opacity"`
}

// CO2Source is a point emitter from the CO₂ source inventory CSV.
type CO2Source struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `json:"name"`
	Operator    string    `json:"operator"`
	Sector      string    `json:"sector"`
	TotalCO2T   float64   `gorm:"column:total_co2_t" json:"total_co2_t"`
	IsProminent bool      `json:"is_prominent"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (CO2Source) TableName() string { return "atlas.co2_sources" }

// Landfill is a point feature from the landfill register CSV.
type Landfill struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `json:"name"`
	Operator  string    `json:"operator"`
	WasteType string    `json:"waste_type"`
	CapacityT float64   `gorm:"column:capacity_t" json:"capacity_t"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (Landfill) TableName() string { return "atlas.landfills" }

// GravelPit is a point feature from the raw-materials extraction CSV.
type GravelPit struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `json:"name"`
	Operator string    `json:"operator"`
	Material string    `json:"material"`
	Status   string    `json:"status"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (GravelPit) TableName() string { return "atlas.gravel_pits" }

// WastewaterPlant is a point feature from the treatment-plant spreadsheet.
// Capacity is in population equivalents.
type WastewaterPlant struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string    `json:"name"`
	Operator   string    `json:"operator"`
	CapacityPE float64   `gorm:"column:capacity_pe" json:"capacity_pe"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (WastewaterPlant) TableName() string { return "atlas.wastewater_plants" }

// GasStorageSite is a point element of the gas network shapefiles.
type GasStorageSite struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `json:"name"`
	Operator    string    `json:"operator"`
	CapacityMCM float64   `gorm:"column:capacity_mcm" json:"capacity_mcm"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (GasStorageSite) TableName() string { return "atlas.gas_storage_sites" }

// GasDistributionPoint is a point element of the gas network shapefiles.
type GasDistributionPoint struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `json:"name"`
	Operator    string    `json:"operator"`
	StationType string    `json:"station_type"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (GasDistributionPoint) TableName() string { return "atlas.gas_distribution_points" }

// GasCompressorStation is a point element of the gas network shapefiles.
type GasCompressorStation struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `json:"name"`
	Operator string    `json:"operator"`
	PowerMW  float64   `gorm:"column:power_mw" json:"power_mw"`
	Style
	Geometry   string `gorm:"type:geometry(Point,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (GasCompressorStation) TableName() string { return "atlas.gas_compressor_stations" }

// GasPipeline is a line element of the gas network shapefiles.
type GasPipeline struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `json:"name"`
	Operator    string    `json:"operator"`
	PressureBar float64   `gorm:"column:pressure_bar" json:"pressure_bar"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (GasPipeline) TableName() string { return "atlas.gas_pipelines" }

// Highway is a line feature from the nationwide road network shapefile.
type Highway struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `json:"name"`
	Ref      string    `gorm:"size:32" json:"ref"`
	Category string    `json:"category"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (Highway) TableName() string { return "atlas.highways" }

// Railway is a line feature from the nationwide rail network shapefile.
type Railway struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `json:"name"`
	Operator string    `json:"operator"`
	LineType string    `json:"line_type"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiLineString,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (Railway) TableName() string { return "atlas.railways" }

// Boundary is a study-area boundary polygon. Upserts are keyed on Code so
// re-importing updates in place.
type Boundary struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code string    `gorm:"uniqueIndex;size:32" json:"code"`
	Name string    `json:"name"`
	Style
	Geometry   string `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	Properties string `gorm:"type:jsonb" json:"properties"`
}

func (Boundary) TableName() string { return "atlas.boundaries" }

// GroundwaterProtectionArea is a polygon from the nationwide groundwater
// protection dataset, the largest source layer by vertex count.
type GroundwaterProtectionArea struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name           string    `json:"name"`
	ProtectionType string    `json:"protection_type"`
	GeometryValid  bool      `json:"geometry_valid"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (GroundwaterProtectionArea) TableName() string { return "atlas.groundwater_protection_areas" }

// ConservationArea is a polygon from the protected-areas dataset.
type ConservationArea struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `json:"name"`
	AreaType      string    `json:"area_type"`
	GeometryValid bool      `json:"geometry_valid"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (ConservationArea) TableName() string { return "atlas.conservation_areas" }

// SettlementArea is a polygon marking built-up land unsuitable for storage.
type SettlementArea struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `json:"name"`
	GeometryValid bool      `json:"geometry_valid"`
	Style
	Geometry           string  `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (SettlementArea) TableName() string { return "atlas.settlement_areas" }
