package models

import "github.com/google/uuid"

// VotingDistrict is a commune polygon with the 2024 election results.
// DistrictCode is the natural key: re-running the import updates a district
// in place instead of duplicating it.
type VotingDistrict struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DistrictCode string    `gorm:"uniqueIndex;size:32" json:"district_code"`
	Name         string    `json:"name"`

	SPOPct    float64 `gorm:"column:spo_pct" json:"spo_pct"`
	OEVPPct   float64 `gorm:"column:oevp_pct" json:"oevp_pct"`
	FPOEPct   float64 `gorm:"column:fpoe_pct" json:"fpoe_pct"`
	GruenePct float64 `gorm:"column:gruene_pct" json:"gruene_pct"`
	KPOEPct   float64 `gorm:"column:kpoe_pct" json:"kpoe_pct"`
	NEOSPct   float64 `gorm:"column:neos_pct" json:"neos_pct"`

	// Derived: SPÖ + GRÜNE + KPÖ, the choropleth metric.
	LeftGreenCombined float64 `json:"left_green_combined"`
	HasVotingData     bool    `json:"has_voting_data"`
	Color             string  `gorm:"size:16" json:"color"`

	GeometryValid      bool    `json:"geometry_valid"`
	Geometry           string  `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	SimplifiedGeometry *string `gorm:"type:geometry(MultiPolygon,4326)" json:"-"`
	Properties         string  `gorm:"type:jsonb" json:"properties"`
}

func (VotingDistrict) TableName() string { return "atlas.voting_districts" }
