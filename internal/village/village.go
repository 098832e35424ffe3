// Package village models the mutable village aggregate: 18 resource
// fields, a variable set of buildings at positions 19-40, the current
// resource stock and storage caps.
package village

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-tvn/internal/models"
)

var (
	// ErrInvalidVillageType is returned for a malformed village type string
	ErrInvalidVillageType = errors.New("invalid village type")
	// ErrPositionOccupied is returned when a building slot is already taken
	ErrPositionOccupied = errors.New("position already occupied")
	// ErrPositionOutOfRange is returned for a position outside 19-40
	ErrPositionOutOfRange = errors.New("building position out of range")
	// ErrSingletonExists is returned when a unique building is added twice
	ErrSingletonExists = errors.New("singleton building already present")
	// ErrUnknownPreset is returned for an unrecognized preset name
	ErrUnknownPreset = errors.New("unknown village preset")
)

// DefaultStorageCap is the initial per-resource storage capacity
// before any warehouse or granary is built
const DefaultStorageCap = 800

// Village is the aggregate simulation state of a single village
type Village struct {
	ID      string // Random identity assigned at creation
	Type    string // e.g. "4-4-4-6"
	Capital bool

	Fields    []models.ResourceField // Always 18, positions 1-18
	Buildings []models.VillageBuilding

	Stock models.Stock
	Caps  models.Caps

	Population int

	// CulturePoints is the accumulated culture total.
	// TODO: accrue CulturePointsPerHour into this during time advance,
	// together with the production bonus stacking below.
	CulturePoints int
}

// FieldMaxLevel returns the level cap for resource fields in this
// village (10 normal, 20 capital)
func (v *Village) FieldMaxLevel() int {
	if v.Capital {
		return models.CapitalFieldMaxLevel
	}
	return models.FieldMaxLevel
}

// FieldAt returns the resource field at a position, or nil
func (v *Village) FieldAt(position int) *models.ResourceField {
	for i := range v.Fields {
		if v.Fields[i].Position == position {
			return &v.Fields[i]
		}
	}
	return nil
}

// BuildingAt returns the building at a position, or nil
func (v *Village) BuildingAt(position int) *models.VillageBuilding {
	for i := range v.Buildings {
		if v.Buildings[i].Position == position {
			return &v.Buildings[i]
		}
	}
	return nil
}

// BuildingByID returns the first building with the given catalog id,
// or nil (building list order is insertion order)
func (v *Village) BuildingByID(id string) *models.VillageBuilding {
	for i := range v.Buildings {
		if v.Buildings[i].ID == id {
			return &v.Buildings[i]
		}
	}
	return nil
}

// AddBuilding places a building in the village. The building list is
// never partially mutated: all checks run before the append.
func (v *Village) AddBuilding(b models.VillageBuilding) error {
	if b.Position < models.BuildingPositionMin || b.Position > models.BuildingPositionMax {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, b.Position)
	}
	if v.BuildingAt(b.Position) != nil {
		return fmt.Errorf("%w: %d", ErrPositionOccupied, b.Position)
	}
	if b.Singleton && v.BuildingByID(b.ID) != nil {
		return fmt.Errorf("%w: %s", ErrSingletonExists, b.ID)
	}
	v.Buildings = append(v.Buildings, b)
	return nil
}

// TypeBreakdown returns the per-type resource field counts, matching
// the parsed village type for a freshly created village
func (v *Village) TypeBreakdown() models.FieldCounts {
	var counts models.FieldCounts
	for i := range v.Fields {
		switch v.Fields[i].Type {
		case models.Wood:
			counts.Wood++
		case models.Clay:
			counts.Clay++
		case models.Iron:
			counts.Iron++
		case models.Crop:
			counts.Crop++
		}
	}
	return counts
}

// ProductionPerHour returns the hourly resource production: the sum
// of field base production per resource type.
//
// TODO: fold in building production bonuses (Sawmill, Grain Mill, ...)
// once the upstream bonus stacking rule (additive vs multiplicative)
// is settled.
func (v *Village) ProductionPerHour() models.Stock {
	var production models.Stock
	for i := range v.Fields {
		f := &v.Fields[i]
		production.Add(f.Type, float64(f.BaseProductionPerHour()))
	}
	return production
}

// CulturePointsPerHour returns the summed hourly culture production
// of fields and buildings
func (v *Village) CulturePointsPerHour() int {
	total := 0
	for i := range v.Fields {
		total += v.Fields[i].CulturePointsPerHour
	}
	for i := range v.Buildings {
		total += v.Buildings[i].CulturePointsPerHour
	}
	return total
}

// Clone creates a deep copy of the village
func (v *Village) Clone() *Village {
	clone := &Village{
		ID:            v.ID,
		Type:          v.Type,
		Capital:       v.Capital,
		Fields:        make([]models.ResourceField, len(v.Fields)),
		Buildings:     make([]models.VillageBuilding, len(v.Buildings)),
		Stock:         v.Stock,
		Caps:          v.Caps,
		Population:    v.Population,
		CulturePoints: v.CulturePoints,
	}
	copy(clone.Fields, v.Fields)
	copy(clone.Buildings, v.Buildings)
	return clone
}
