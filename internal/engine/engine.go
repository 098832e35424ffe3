// Package engine orchestrates the village, the building catalog and
// the simulation clock. An external driver (a CLI, a planner, a test
// harness) reads the current state, picks one of the valid actions
// and commits it; the engine reserves resources and queues the
// construction for completion.
package engine

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-tvn/internal/catalog"
	"github.com/napolitain/solver-tvn/internal/models"
	"github.com/napolitain/solver-tvn/internal/village"
)

var (
	// ErrInsufficientResources is returned when the current stock does
	// not cover an action's cost after earlier reservations
	ErrInsufficientResources = errors.New("insufficient resources")
	// ErrStaleAction is returned when an action no longer matches the
	// current state (slot taken, level moved on, construction pending)
	ErrStaleAction = errors.New("action no longer valid")
	// ErrNoBuildingSelected is returned when committing a placeholder
	// build action whose building id the caller never filled in
	ErrNoBuildingSelected = errors.New("placeholder action has no building selected")
	// ErrInvalidServerSpeed is returned for a non-positive speed multiplier
	ErrInvalidServerSpeed = errors.New("server speed must be positive")
)

// Engine drives a single village simulation
type Engine struct {
	catalog *catalog.Catalog
	speed   float64
	state   *GameState
}

// New creates an engine for a village under a fixed server speed
// multiplier (1 = normal speed, 2 = build times halved, ...)
func New(cat *catalog.Catalog, v *village.Village, speed float64) (*Engine, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerSpeed, speed)
	}
	return &Engine{
		catalog: cat,
		speed:   speed,
		state:   NewGameState(v),
	}, nil
}

// Catalog returns the building catalog the engine prices actions against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ServerSpeed returns the fixed speed multiplier
func (e *Engine) ServerSpeed() float64 {
	return e.speed
}

// CurrentState returns the current state snapshot. States are
// immutable by convention: transition methods produce new values, so
// repeated calls without an intervening Commit or advance return the
// identical snapshot.
func (e *Engine) CurrentState() *GameState {
	return e.state
}

// ValidActions enumerates the legal actions for the current state
func (e *Engine) ValidActions() []models.Action {
	return e.state.Village.ValidActions()
}

// Advance replaces the engine state with an advanced one. The passed
// state must derive from CurrentState; this hook lets a driver use
// the GameState transition methods and feed the result back.
func (e *Engine) Advance(next *GameState) {
	e.state = next
}

// Commit validates an action against the current state, reserves its
// resource cost immediately and queues the construction. On success
// the new state is installed and returned; the prior snapshot remains
// valid for backtracking.
func (e *Engine) Commit(action models.Action) (*GameState, error) {
	st := e.state

	var (
		kind         ConstructionKind
		catalogID    string
		fieldType    models.ResourceType
		buildingName string
		singleton    bool
	)

	switch a := action.(type) {
	case models.BuildFieldAction:
		f := st.Village.FieldAt(a.Pos)
		if f == nil || f.Type != a.FieldType || f.Level != 0 || a.ToLevel != 1 {
			return nil, fmt.Errorf("%w: field build at %d", ErrStaleAction, a.Pos)
		}
		kind = FieldConstruction
		fieldType = f.Type
		catalogID = models.FieldCatalogID(f.Type)

	case models.UpgradeFieldAction:
		f := st.Village.FieldAt(a.Pos)
		if f == nil || f.Type != a.FieldType || f.Level+1 != a.ToLevel || a.ToLevel > st.Village.FieldMaxLevel() {
			return nil, fmt.Errorf("%w: field upgrade at %d to %d", ErrStaleAction, a.Pos, a.ToLevel)
		}
		kind = FieldConstruction
		fieldType = f.Type
		catalogID = models.FieldCatalogID(f.Type)

	case models.BuildBuildingAction:
		if a.BuildingID == "" {
			return nil, ErrNoBuildingSelected
		}
		if a.Pos < models.BuildingPositionMin || a.Pos > models.BuildingPositionMax {
			return nil, fmt.Errorf("%w: %d", village.ErrPositionOutOfRange, a.Pos)
		}
		if st.Village.BuildingAt(a.Pos) != nil || a.ToLevel != 1 {
			return nil, fmt.Errorf("%w: build at %d", ErrStaleAction, a.Pos)
		}
		// Singleton uniqueness covers in-flight constructions too, or a
		// second commit would pay for a building that can never be placed
		if e.catalog.IsSingleton(a.BuildingID) {
			if st.Village.BuildingByID(a.BuildingID) != nil || st.Pending.PendingBuilding(a.BuildingID) {
				return nil, fmt.Errorf("%w: %s already present", ErrStaleAction, a.BuildingID)
			}
		}
		kind = BuildingConstruction
		catalogID = a.BuildingID
		singleton = e.catalog.IsSingleton(a.BuildingID)

	case models.UpgradeBuildingAction:
		b := st.Village.BuildingAt(a.Pos)
		if b == nil || b.ID != a.BuildingID || b.Level+1 != a.ToLevel || a.ToLevel > models.BuildingMaxLevel {
			return nil, fmt.Errorf("%w: building upgrade at %d to %d", ErrStaleAction, a.Pos, a.ToLevel)
		}
		kind = BuildingConstruction
		catalogID = a.BuildingID
		singleton = b.Singleton

	default:
		return nil, fmt.Errorf("%w: unsupported action %T", ErrStaleAction, action)
	}

	// One pending construction per slot
	if st.Pending.PendingAt(action.Position()) {
		return nil, fmt.Errorf("%w: construction already pending at %d", ErrStaleAction, action.Position())
	}

	bd, err := e.catalog.Get(catalogID)
	if err != nil {
		return nil, err
	}
	ld := bd.LevelData(action.TargetLevel())
	if ld == nil {
		return nil, fmt.Errorf("%w: %s has no level %d", ErrStaleAction, catalogID, action.TargetLevel())
	}

	if !st.Village.Stock.CanAfford(ld.Cost) {
		return nil, fmt.Errorf("%w: %s level %d", ErrInsufficientResources, catalogID, ld.Level)
	}

	next := st.Clone()
	next.Village.Stock.Spend(ld.Cost)

	if kind == BuildingConstruction {
		buildingName = bd.Name
	}

	next.Pending.Push(Construction{
		Kind:          kind,
		Position:      action.Position(),
		TargetLevel:   action.TargetLevel(),
		CompletionAt:  next.Now + scaledDuration(ld.BuildTimeSeconds, e.speed),
		Cost:          ld.Cost,
		FieldType:     fieldType,
		BuildingID:    catalogID,
		BuildingName:  buildingName,
		Singleton:     singleton,
		Population:    ld.Population,
		CulturePoints: ld.CulturePoints,
		Effects:       ld.Effects,
		StorageTypes:  e.storageTypes(catalogID, ld.Effects),
	})

	e.state = next
	return next, nil
}

// storageTypes resolves which resource caps a storage effect raises:
// warehouse-class buildings cover wood, clay and iron; granary-class
// buildings cover crop
func (e *Engine) storageTypes(id string, effects *models.BuildingEffects) []models.ResourceType {
	if effects == nil || effects.StorageCapacity == nil {
		return nil
	}
	bc, ok := e.catalog.ClassOf(id)
	if !ok {
		return nil
	}
	switch bc.PrimaryEffect {
	case catalog.EffectWarehouseCapacity:
		return []models.ResourceType{models.Wood, models.Clay, models.Iron}
	case catalog.EffectGranaryCapacity:
		return []models.ResourceType{models.Crop}
	}
	return nil
}

// scaledDuration applies the server speed multiplier to a build time,
// flooring nonzero durations at one second
func scaledDuration(seconds int, speed float64) int {
	if seconds <= 0 {
		return 0
	}
	d := int(float64(seconds) / speed)
	if d < 1 {
		d = 1
	}
	return d
}
