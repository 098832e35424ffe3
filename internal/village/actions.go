package village

import (
	"sort"

	"github.com/napolitain/solver-tvn/internal/models"
)

// ValidActions enumerates every legal action for the current village
// snapshot. The enumeration is pure: it never mutates the village.
//
// Ordering is deterministic for a fixed village: resource fields by
// position, then vacant building slots ascending, then existing
// buildings by position.
func (v *Village) ValidActions() []models.Action {
	var actions []models.Action

	// One action per field: build at level 0, upgrade below the cap,
	// nothing at the cap
	maxFieldLevel := v.FieldMaxLevel()
	fields := make([]models.ResourceField, len(v.Fields))
	copy(fields, v.Fields)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Position < fields[j].Position
	})

	for i := range fields {
		f := &fields[i]
		if f.Level == 0 {
			actions = append(actions, models.BuildFieldAction{
				Pos:       f.Position,
				FieldType: f.Type,
				ToLevel:   1,
			})
		} else if f.Level < maxFieldLevel {
			actions = append(actions, models.UpgradeFieldAction{
				Pos:       f.Position,
				FieldType: f.Type,
				FromLevel: f.Level,
				ToLevel:   f.Level + 1,
			})
		}
	}

	// A placeholder build action for every vacant building slot; which
	// building to place is the caller's planning decision
	for pos := models.BuildingPositionMin; pos <= models.BuildingPositionMax; pos++ {
		if v.BuildingAt(pos) == nil {
			actions = append(actions, models.BuildBuildingAction{
				Pos:     pos,
				ToLevel: 1,
			})
		}
	}

	// Upgrades for existing buildings below the level cap
	buildings := make([]models.VillageBuilding, len(v.Buildings))
	copy(buildings, v.Buildings)
	sort.Slice(buildings, func(i, j int) bool {
		return buildings[i].Position < buildings[j].Position
	})

	for i := range buildings {
		b := &buildings[i]
		if b.Level < models.BuildingMaxLevel {
			actions = append(actions, models.UpgradeBuildingAction{
				Pos:        b.Position,
				BuildingID: b.ID,
				FromLevel:  b.Level,
				ToLevel:    b.Level + 1,
			})
		}
	}

	return actions
}
