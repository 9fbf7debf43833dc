package models

import "github.com/paulmach/orb"

// TargetSRID is the spatial reference every stored geometry is tagged
// with. The source agencies publish their sheets in EPSG:4253.
const TargetSRID = 4253

// Canonical susceptibility codes. DF is carried through from landslide
// sheets for debris flow zones, which have no rating on the main scale.
const (
	SusceptibilityLow      = "LS"
	SusceptibilityModerate = "MS"
	SusceptibilityHigh     = "HS"
	SusceptibilityVeryHigh = "VHS"
	SusceptibilityDebris   = "DF"
)

// SusceptibilityFeature is one ingested vector feature. The same shape
// backs all three dataset types; the measure fields stay nil for
// liquefaction, whose sheets do not carry them.
type SusceptibilityFeature struct {
	ID           int64
	DatasetID    int64
	DatasetType  DatasetType
	Code         string
	OriginalCode string
	ShapeLength  *float64
	ShapeArea    *float64
	OrigFID      *int64
	SRID         int
	Geometry     orb.MultiPolygon
}
