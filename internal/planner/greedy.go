// Package planner is the seam where build-order search plugs into
// the simulation core. Only the trivial greedy picker is implemented;
// real optimizing strategies are intentionally out of scope and run
// against the same interface.
package planner

import (
	"github.com/napolitain/solver-tvn/internal/catalog"
	"github.com/napolitain/solver-tvn/internal/engine"
	"github.com/napolitain/solver-tvn/internal/models"
)

// Planner picks the next action to commit against a state, or nil
// when nothing should be committed right now (the driver then
// advances time or stops)
type Planner interface {
	Next(state *engine.GameState, actions []models.Action) models.Action
}

// Greedy picks the cheapest affordable field or building upgrade by
// total resource cost. It skips placeholder build actions (choosing
// which building to place is exactly the decision this stub does not
// make) and returns nil when nothing is affordable.
type Greedy struct {
	Catalog *catalog.Catalog
}

// NewGreedy creates a greedy planner over a catalog
func NewGreedy(cat *catalog.Catalog) *Greedy {
	return &Greedy{Catalog: cat}
}

// Next returns the cheapest affordable action, or nil
func (g *Greedy) Next(state *engine.GameState, actions []models.Action) models.Action {
	var best models.Action
	bestCost := 0

	for _, action := range actions {
		if state.Pending.PendingAt(action.Position()) {
			continue
		}

		id := g.catalogID(action)
		if id == "" {
			continue
		}

		bd, err := g.Catalog.Get(id)
		if err != nil {
			continue
		}
		ld := bd.LevelData(action.TargetLevel())
		if ld == nil {
			continue
		}
		if !state.Village.Stock.CanAfford(ld.Cost) {
			continue
		}

		total := ld.Cost.Total()
		if best == nil || total < bestCost {
			best = action
			bestCost = total
		}
	}

	return best
}

// catalogID resolves the catalog id an action is priced under; empty
// for actions the greedy picker does not consider
func (g *Greedy) catalogID(action models.Action) string {
	switch a := action.(type) {
	case models.BuildFieldAction:
		return models.FieldCatalogID(a.FieldType)
	case models.UpgradeFieldAction:
		return models.FieldCatalogID(a.FieldType)
	case models.UpgradeBuildingAction:
		return a.BuildingID
	default:
		return ""
	}
}
