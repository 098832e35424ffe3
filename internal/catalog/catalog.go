// Package catalog holds the static per-level building cost/effect
// tables the simulation core prices actions against. The catalog is
// built once from an external dataset and is read-only afterwards;
// any integrity problem is fatal at construction time, never at
// access time.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/napolitain/solver-tvn/internal/models"
)

// ErrBuildingNotFound is returned by Get for an unknown building id
var ErrBuildingNotFound = errors.New("building not found in catalog")

// Catalog is the immutable building cost/effect table
type Catalog struct {
	buildings map[string]*models.BuildingData
	class     Classification
}

// New builds a catalog from building data, validating every entry.
// The classification table is a constructor dependency so tests can
// run against fixture tables.
func New(data []*models.BuildingData, class Classification) (*Catalog, error) {
	c := &Catalog{
		buildings: make(map[string]*models.BuildingData, len(data)),
		class:     class,
	}

	for _, b := range data {
		if err := validate(b); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", b.ID, err)
		}
		if _, dup := c.buildings[b.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate building id", b.ID)
		}
		// Backfill the category from the classification table when the
		// data source left it empty
		if b.Category == "" {
			if bc, ok := class.Class(b.ID); ok {
				b.Category = bc.Category
			}
		}
		c.buildings[b.ID] = b
	}

	return c, nil
}

// Get returns the ordered level table for a building id
func (c *Catalog) Get(id string) (*models.BuildingData, error) {
	b, ok := c.buildings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, id)
	}
	return b, nil
}

// Len returns the number of buildings in the catalog
func (c *Catalog) Len() int {
	return len(c.buildings)
}

// IDs returns all building ids in ascending order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.buildings))
	for id := range c.buildings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClassOf returns the classification for a building id
func (c *Catalog) ClassOf(id string) (BuildingClass, bool) {
	return c.class.Class(id)
}

// IsSingleton reports whether a building id is unique per village
func (c *Catalog) IsSingleton(id string) bool {
	return c.class.IsSingleton(id)
}

// validate enforces the catalog integrity invariants: well-formed id,
// levels contiguous ascending from 1, and per-resource monotonic
// non-decreasing cost and build time across levels
func validate(b *models.BuildingData) error {
	if !models.ValidBuildingID(b.ID) {
		return fmt.Errorf("invalid building id format %q", b.ID)
	}
	if b.Name == "" {
		return errors.New("missing building name")
	}
	if len(b.Levels) == 0 {
		return errors.New("no levels")
	}
	if b.MaxLevel != len(b.Levels) {
		return fmt.Errorf("max level %d does not match %d levels", b.MaxLevel, len(b.Levels))
	}

	var prevCost models.Costs
	prevTime := -1
	for i := range b.Levels {
		lv := &b.Levels[i]
		if lv.Level != i+1 {
			return fmt.Errorf("levels not contiguous: expected level %d at index %d, got %d", i+1, i, lv.Level)
		}
		if lv.Cost.Wood < 0 || lv.Cost.Clay < 0 || lv.Cost.Iron < 0 || lv.Cost.Crop < 0 {
			return fmt.Errorf("level %d: negative resource cost", lv.Level)
		}
		if lv.BuildTimeSeconds < 0 {
			return fmt.Errorf("level %d: negative build time", lv.Level)
		}
		if lv.Population < 0 || lv.CulturePoints < 0 {
			return fmt.Errorf("level %d: negative population or culture points", lv.Level)
		}
		for _, rt := range models.AllResourceTypes() {
			if lv.Cost.Get(rt) < prevCost.Get(rt) {
				return fmt.Errorf("level %d: %s cost decreases", lv.Level, rt)
			}
		}
		prevCost = lv.Cost
		if lv.BuildTimeSeconds < prevTime {
			return fmt.Errorf("level %d: build time decreases", lv.Level)
		}
		prevTime = lv.BuildTimeSeconds
	}

	return nil
}
