package models

import "math"

// Resource field layout constants
const (
	FieldPositionMin = 1
	FieldPositionMax = 18
	FieldCount       = 18

	FieldMaxLevel        = 10 // Normal village
	CapitalFieldMaxLevel = 20 // Capital village
)

// fieldBaseRate is the per-hour base production at level 1 before the
// exponential growth factor (the same for all four resource types)
const fieldBaseRate = 30

// ResourceField represents a single production tile in a village
type ResourceField struct {
	Type     ResourceType
	Level    int // 0 = not yet built
	Position int // 1-18, unique within a village

	// CulturePointsPerHour is the field's current culture contribution,
	// set from catalog data when a construction completes
	CulturePointsPerHour int
}

// BaseProductionPerHour returns the field's hourly base production.
// A level 0 field produces nothing; from level 1 production grows
// exponentially: 30 * level * 1.5^(level-1).
func (f ResourceField) BaseProductionPerHour() int {
	if f.Level <= 0 {
		return 0
	}
	return int(fieldBaseRate * float64(f.Level) * math.Pow(1.5, float64(f.Level-1)))
}

// FieldCatalogID returns the catalog building id backing a field type
// (g1 Woodcutter, g2 Clay Pit, g3 Iron Mine, g4 Cropland)
func FieldCatalogID(rt ResourceType) string {
	switch rt {
	case Wood:
		return "g1"
	case Clay:
		return "g2"
	case Iron:
		return "g3"
	case Crop:
		return "g4"
	}
	return ""
}
