package catalog

// Building categories as used by the catalog data source
const (
	CategoryResources      = "Resources"
	CategoryInfrastructure = "Infrastructure"
	CategoryMilitary       = "Military"
)

// Primary effect kinds a building can be classified under
const (
	EffectWoodProduction     = "wood_production"
	EffectClayProduction     = "clay_production"
	EffectIronProduction     = "iron_production"
	EffectCropProduction     = "crop_production"
	EffectWoodBonus          = "wood_bonus"
	EffectClayBonus          = "clay_bonus"
	EffectIronBonus          = "iron_bonus"
	EffectCropBonus          = "crop_bonus"
	EffectWarehouseCapacity  = "warehouse_capacity"
	EffectGranaryCapacity    = "granary_capacity"
	EffectBuildTimeReduction = "build_time_reduction"
	EffectBuildCostReduction = "build_cost_reduction"
	EffectMerchantCapacity   = "merchant_capacity"
	EffectPopulationBonus    = "population_bonus"
	EffectCulturePoints      = "culture_points_bonus"
	EffectInfantryTraining   = "infantry_training_time"
	EffectCavalryTraining    = "cavalry_training_time"
	EffectSiegeTraining      = "siege_training_time"
	EffectUnitUpgrades       = "unit_upgrades"
	EffectOffensiveStrength  = "offensive_strength"
	EffectDefensiveStrength  = "defensive_strength"
)

// BuildingClass describes how a building id is classified: its
// category, its primary effect kind, and whether the building is
// unique per village.
type BuildingClass struct {
	Category      string
	PrimaryEffect string
	Singleton     bool
}

// Classification maps building ids to their class. It is built once
// at startup and treated as immutable; inject it into the catalog
// constructor rather than reading a package-level table.
type Classification map[string]BuildingClass

// DefaultClassification returns the stock classification table for
// the standard building set
func DefaultClassification() Classification {
	return Classification{
		// Resource fields and production boosters
		"g1": {Category: CategoryResources, PrimaryEffect: EffectWoodProduction},                  // Woodcutter
		"g2": {Category: CategoryResources, PrimaryEffect: EffectClayProduction},                  // Clay Pit
		"g3": {Category: CategoryResources, PrimaryEffect: EffectIronProduction},                  // Iron Mine
		"g4": {Category: CategoryResources, PrimaryEffect: EffectCropProduction},                  // Cropland
		"g5": {Category: CategoryResources, PrimaryEffect: EffectWoodBonus, Singleton: true},      // Sawmill
		"g6": {Category: CategoryResources, PrimaryEffect: EffectClayBonus, Singleton: true},      // Brickyard
		"g7": {Category: CategoryResources, PrimaryEffect: EffectIronBonus, Singleton: true},      // Iron Foundry
		"g8": {Category: CategoryResources, PrimaryEffect: EffectCropBonus, Singleton: true},      // Grain Mill
		"g9": {Category: CategoryResources, PrimaryEffect: EffectCropBonus, Singleton: true},      // Bakery

		// Infrastructure
		"g10": {Category: CategoryInfrastructure, PrimaryEffect: EffectWarehouseCapacity},                   // Warehouse
		"g11": {Category: CategoryInfrastructure, PrimaryEffect: EffectGranaryCapacity},                     // Granary
		"g15": {Category: CategoryInfrastructure, PrimaryEffect: EffectBuildTimeReduction, Singleton: true}, // Main Building
		"g17": {Category: CategoryInfrastructure, PrimaryEffect: EffectMerchantCapacity, Singleton: true},   // Marketplace
		"g24": {Category: CategoryInfrastructure, PrimaryEffect: EffectCulturePoints, Singleton: true},      // Town Hall
		"g25": {Category: CategoryInfrastructure, PrimaryEffect: EffectPopulationBonus, Singleton: true},    // Residence
		"g26": {Category: CategoryInfrastructure, PrimaryEffect: EffectPopulationBonus, Singleton: true},    // Palace
		"g27": {Category: CategoryInfrastructure, PrimaryEffect: EffectCulturePoints, Singleton: true},      // Treasury
		"g28": {Category: CategoryInfrastructure, PrimaryEffect: EffectMerchantCapacity, Singleton: true},   // Trade Office
		"g34": {Category: CategoryInfrastructure, PrimaryEffect: EffectBuildCostReduction, Singleton: true}, // Stonemason's Lodge
		"g38": {Category: CategoryInfrastructure, PrimaryEffect: EffectWarehouseCapacity},                   // Great Warehouse
		"g39": {Category: CategoryInfrastructure, PrimaryEffect: EffectGranaryCapacity},                     // Great Granary

		// Military
		"g13": {Category: CategoryMilitary, PrimaryEffect: EffectUnitUpgrades, Singleton: true},      // Smithy
		"g14": {Category: CategoryMilitary, PrimaryEffect: EffectUnitUpgrades, Singleton: true},      // Tournament Square
		"g19": {Category: CategoryMilitary, PrimaryEffect: EffectInfantryTraining, Singleton: true},  // Barracks
		"g20": {Category: CategoryMilitary, PrimaryEffect: EffectCavalryTraining, Singleton: true},   // Stable
		"g21": {Category: CategoryMilitary, PrimaryEffect: EffectSiegeTraining, Singleton: true},     // Workshop
		"g22": {Category: CategoryMilitary, PrimaryEffect: EffectUnitUpgrades, Singleton: true},      // Academy
		"g29": {Category: CategoryMilitary, PrimaryEffect: EffectInfantryTraining},                   // Great Barracks
		"g30": {Category: CategoryMilitary, PrimaryEffect: EffectCavalryTraining},                    // Great Stable
		"g31": {Category: CategoryMilitary, PrimaryEffect: EffectDefensiveStrength, Singleton: true}, // City Wall
		"g32": {Category: CategoryMilitary, PrimaryEffect: EffectDefensiveStrength, Singleton: true}, // Earth Wall
		"g33": {Category: CategoryMilitary, PrimaryEffect: EffectDefensiveStrength, Singleton: true}, // Palisade
		"g37": {Category: CategoryMilitary, PrimaryEffect: EffectOffensiveStrength, Singleton: true}, // Hero's Mansion
	}
}

// Class returns the class for a building id, with ok=false when the
// id is not in the table (unclassified buildings still load, they
// just carry no category or effect interpretation)
func (c Classification) Class(id string) (BuildingClass, bool) {
	bc, ok := c[id]
	return bc, ok
}

// IsSingleton reports whether a building id is unique per village
func (c Classification) IsSingleton(id string) bool {
	return c[id].Singleton
}
