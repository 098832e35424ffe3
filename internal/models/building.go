package models

import "regexp"

// Building layout constants
const (
	BuildingPositionMin = 19
	BuildingPositionMax = 40

	BuildingMaxLevel = 25
)

// MainBuildingID is the catalog id of the Main Building every new
// village starts with at position 19
const MainBuildingID = "g15"

var buildingIDPattern = regexp.MustCompile(`^g\d+$`)

// ValidBuildingID reports whether id matches the catalog id format ("g" + digits)
func ValidBuildingID(id string) bool {
	return buildingIDPattern.MatchString(id)
}

// VillageBuilding represents a building instance placed in a village
type VillageBuilding struct {
	ID       string // Catalog id, e.g. "g15"
	Name     string
	Level    int // 0-25
	Position int // 19-40, unique within a village

	// Singleton buildings (Main Building, Palace, ...) may appear at
	// most once per village regardless of position
	Singleton bool

	// CulturePointsPerHour is the building's current culture
	// contribution, set from catalog data on construction completion
	CulturePointsPerHour int
}

// BuildingLevel represents catalog data for a specific building level
type BuildingLevel struct {
	Level            int // 1-100
	Cost             Costs
	BuildTimeSeconds int
	Population       int
	CulturePoints    int
	Effects          *BuildingEffects // nil if the level grants no effects
}

// BuildingData represents a catalog entry: one building with all its levels
type BuildingData struct {
	ID       string
	Name     string
	Category string
	MaxLevel int
	Levels   []BuildingLevel // ascending, contiguous from 1 to MaxLevel
}

// LevelData returns the data for a specific level, or nil if out of range
func (b *BuildingData) LevelData(level int) *BuildingLevel {
	if level < 1 || level > len(b.Levels) {
		return nil
	}
	return &b.Levels[level-1]
}
