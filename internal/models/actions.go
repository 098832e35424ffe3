package models

import "fmt"

// Action is a legal move enumerated from a village snapshot. Actions
// are values: generating one never mutates state, committing one to
// the engine does.
type Action interface {
	Position() int
	TargetLevel() int
	Description() string
}

// BuildFieldAction builds a level 0 resource field to level 1
type BuildFieldAction struct {
	Pos       int
	FieldType ResourceType
	ToLevel   int
}

func (a BuildFieldAction) Position() int    { return a.Pos }
func (a BuildFieldAction) TargetLevel() int { return a.ToLevel }

func (a BuildFieldAction) Description() string {
	return fmt.Sprintf("build %s field at %d", a.FieldType, a.Pos)
}

// UpgradeFieldAction upgrades an existing resource field by one level
type UpgradeFieldAction struct {
	Pos       int
	FieldType ResourceType
	FromLevel int
	ToLevel   int
}

func (a UpgradeFieldAction) Position() int    { return a.Pos }
func (a UpgradeFieldAction) TargetLevel() int { return a.ToLevel }

func (a UpgradeFieldAction) Description() string {
	return fmt.Sprintf("upgrade %s field at %d to level %d", a.FieldType, a.Pos, a.ToLevel)
}

// BuildBuildingAction constructs a new building in a vacant slot.
// The generator emits it with an empty BuildingID: which building to
// place is a planning decision left to the caller, who fills in the
// id before committing.
type BuildBuildingAction struct {
	Pos        int
	BuildingID string
	ToLevel    int
}

func (a BuildBuildingAction) Position() int    { return a.Pos }
func (a BuildBuildingAction) TargetLevel() int { return a.ToLevel }

func (a BuildBuildingAction) Description() string {
	if a.BuildingID == "" {
		return fmt.Sprintf("build at vacant slot %d", a.Pos)
	}
	return fmt.Sprintf("build %s at %d", a.BuildingID, a.Pos)
}

// UpgradeBuildingAction upgrades an existing building by one level
type UpgradeBuildingAction struct {
	Pos        int
	BuildingID string
	FromLevel  int
	ToLevel    int
}

func (a UpgradeBuildingAction) Position() int    { return a.Pos }
func (a UpgradeBuildingAction) TargetLevel() int { return a.ToLevel }

func (a UpgradeBuildingAction) Description() string {
	return fmt.Sprintf("upgrade %s at %d to level %d", a.BuildingID, a.Pos, a.ToLevel)
}
