package models

// ResourceType represents the different resource types in the game
type ResourceType string

const (
	Wood ResourceType = "wood"
	Clay ResourceType = "clay"
	Iron ResourceType = "iron"
	Crop ResourceType = "crop"
)

// AllResourceTypes returns all resource types in deterministic order
// (wood, clay, iron, crop: the order used by village type strings)
func AllResourceTypes() []ResourceType {
	return []ResourceType{Wood, Clay, Iron, Crop}
}

// Costs represents resource costs for a build or upgrade (no maps)
type Costs struct {
	Wood int
	Clay int
	Iron int
	Crop int
}

// Get returns the cost for a specific resource type
func (c Costs) Get(rt ResourceType) int {
	switch rt {
	case Wood:
		return c.Wood
	case Clay:
		return c.Clay
	case Iron:
		return c.Iron
	case Crop:
		return c.Crop
	}
	return 0
}

// Total returns the summed cost across all resource types
func (c Costs) Total() int {
	return c.Wood + c.Clay + c.Iron + c.Crop
}

// Stock represents a per-resource amount, used for current resources
// and production rates (fractional amounts accrue between events)
type Stock struct {
	Wood float64
	Clay float64
	Iron float64
	Crop float64
}

// Get returns the amount for a specific resource type
func (s Stock) Get(rt ResourceType) float64 {
	switch rt {
	case Wood:
		return s.Wood
	case Clay:
		return s.Clay
	case Iron:
		return s.Iron
	case Crop:
		return s.Crop
	}
	return 0
}

// Set sets the amount for a specific resource type
func (s *Stock) Set(rt ResourceType, amount float64) {
	switch rt {
	case Wood:
		s.Wood = amount
	case Clay:
		s.Clay = amount
	case Iron:
		s.Iron = amount
	case Crop:
		s.Crop = amount
	}
}

// Add adds to the amount for a specific resource type
func (s *Stock) Add(rt ResourceType, amount float64) {
	s.Set(rt, s.Get(rt)+amount)
}

// CanAfford returns true if the stock covers the given costs
func (s Stock) CanAfford(c Costs) bool {
	return s.Wood >= float64(c.Wood) &&
		s.Clay >= float64(c.Clay) &&
		s.Iron >= float64(c.Iron) &&
		s.Crop >= float64(c.Crop)
}

// Spend deducts the given costs from the stock
func (s *Stock) Spend(c Costs) {
	s.Wood -= float64(c.Wood)
	s.Clay -= float64(c.Clay)
	s.Iron -= float64(c.Iron)
	s.Crop -= float64(c.Crop)
}

// Clamp caps each resource at its storage capacity (overflow is lost)
func (s *Stock) Clamp(caps Caps) {
	for _, rt := range AllResourceTypes() {
		if limit := float64(caps.Get(rt)); s.Get(rt) > limit {
			s.Set(rt, limit)
		}
	}
}

// Caps represents per-resource storage capacities
type Caps struct {
	Wood int
	Clay int
	Iron int
	Crop int
}

// Get returns the capacity for a specific resource type
func (c Caps) Get(rt ResourceType) int {
	switch rt {
	case Wood:
		return c.Wood
	case Clay:
		return c.Clay
	case Iron:
		return c.Iron
	case Crop:
		return c.Crop
	}
	return 0
}

// Set sets the capacity for a specific resource type
func (c *Caps) Set(rt ResourceType, capacity int) {
	switch rt {
	case Wood:
		c.Wood = capacity
	case Clay:
		c.Clay = capacity
	case Iron:
		c.Iron = capacity
	case Crop:
		c.Crop = capacity
	}
}

// Raise lifts the capacity for a resource type if the new value is higher
func (c *Caps) Raise(rt ResourceType, capacity int) {
	if capacity > c.Get(rt) {
		c.Set(rt, capacity)
	}
}

// FieldCounts is the per-type resource field distribution of a village
type FieldCounts struct {
	Wood int
	Clay int
	Iron int
	Crop int
}

// Get returns the field count for a specific resource type
func (f FieldCounts) Get(rt ResourceType) int {
	switch rt {
	case Wood:
		return f.Wood
	case Clay:
		return f.Clay
	case Iron:
		return f.Iron
	case Crop:
		return f.Crop
	}
	return 0
}

// Total returns the summed field count (always 18 for a valid village)
func (f FieldCounts) Total() int {
	return f.Wood + f.Clay + f.Iron + f.Crop
}
