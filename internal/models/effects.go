package models

// UnclassifiedEffect carries a catalog effect the classification table
// does not recognize yet. It exists for forward compatibility only;
// the named BuildingEffects fields are the contract.
type UnclassifiedEffect struct {
	Name  string
	Value float64
}

// BuildingEffects is the closed record of effects a building level can
// grant. Fields are nil when the level does not grant that effect.
// Percentage fields are expressed as percent (25 = +25%), absolute
// fields as flat amounts.
type BuildingEffects struct {
	// Production bonuses per resource type (percentage)
	WoodBonus *float64
	ClayBonus *float64
	IronBonus *float64
	CropBonus *float64

	StorageCapacity  *int // Absolute warehouse/granary capacity
	PopulationBonus  *int // Absolute population capacity
	MerchantCapacity *int // Absolute merchant carrying capacity

	TrainingTimeReduction *float64 // Percentage
	BuildTimeReduction    *float64 // Percentage
	BuildCostReduction    *float64 // Percentage
	OffensiveBonus        *float64 // Percentage
	DefensiveBonus        *float64 // Percentage
	CulturePointsBonus    *float64 // Percentage

	Unclassified []UnclassifiedEffect
}

// HasEffects returns true if at least one effect is set
func (e *BuildingEffects) HasEffects() bool {
	if e == nil {
		return false
	}
	return e.WoodBonus != nil ||
		e.ClayBonus != nil ||
		e.IronBonus != nil ||
		e.CropBonus != nil ||
		e.StorageCapacity != nil ||
		e.PopulationBonus != nil ||
		e.MerchantCapacity != nil ||
		e.TrainingTimeReduction != nil ||
		e.BuildTimeReduction != nil ||
		e.BuildCostReduction != nil ||
		e.OffensiveBonus != nil ||
		e.DefensiveBonus != nil ||
		e.CulturePointsBonus != nil ||
		len(e.Unclassified) > 0
}

// ProductionBonus returns the production bonus for a resource type,
// or nil if the level grants none
func (e *BuildingEffects) ProductionBonus(rt ResourceType) *float64 {
	if e == nil {
		return nil
	}
	switch rt {
	case Wood:
		return e.WoodBonus
	case Clay:
		return e.ClayBonus
	case Iron:
		return e.IronBonus
	case Crop:
		return e.CropBonus
	}
	return nil
}

// SetProductionBonus sets the production bonus for a resource type
func (e *BuildingEffects) SetProductionBonus(rt ResourceType, pct float64) {
	switch rt {
	case Wood:
		e.WoodBonus = &pct
	case Clay:
		e.ClayBonus = &pct
	case Iron:
		e.IronBonus = &pct
	case Crop:
		e.CropBonus = &pct
	}
}
