package engine

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-tvn/internal/models"
	"github.com/napolitain/solver-tvn/internal/village"
)

var (
	// ErrNoConstructionsPending is returned by AdvanceToNextEvent on an
	// idle village. This is the normal terminal condition of a
	// simulation, not a corruption: check PendingCount first.
	ErrNoConstructionsPending = errors.New("no constructions pending")
	// ErrInvalidTimestamp is returned when advancing time backward
	ErrInvalidTimestamp = errors.New("timestamp precedes current time")
)

// GameState wraps a village with the simulation clock and the queue
// of in-flight constructions. Transition methods return new states
// and leave the receiver untouched, so callers may retain snapshots
// for backtracking search.
type GameState struct {
	Village *village.Village
	Now     int // Seconds since village creation
	Pending *ConstructionQueue
}

// NewGameState creates the initial state for a village at time zero
func NewGameState(v *village.Village) *GameState {
	return &GameState{
		Village: v,
		Now:     0,
		Pending: NewConstructionQueue(),
	}
}

// Clone creates a deep copy of the state
func (s *GameState) Clone() *GameState {
	return &GameState{
		Village: s.Village.Clone(),
		Now:     s.Now,
		Pending: s.Pending.Clone(),
	}
}

// PendingCount returns the number of in-flight constructions
func (s *GameState) PendingCount() int {
	return s.Pending.Len()
}

// AdvanceToNextEvent returns a new state advanced to the completion
// of the earliest pending construction, with resources accrued for
// the elapsed interval and the construction applied
func (s *GameState) AdvanceToNextEvent() (*GameState, error) {
	if s.Pending.Empty() {
		return nil, ErrNoConstructionsPending
	}

	next := s.Clone()
	c, _ := next.Pending.Pop()
	next.accrue(c.CompletionAt - next.Now)
	next.Now = c.CompletionAt
	next.apply(c)
	return next, nil
}

// AdvanceTimeTo returns a new state advanced to an arbitrary future
// instant, completing every construction whose completion time falls
// within the interval. Time is monotonic: a target before the current
// time fails with ErrInvalidTimestamp.
func (s *GameState) AdvanceTimeTo(timestamp int) (*GameState, error) {
	if timestamp < s.Now {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidTimestamp, timestamp, s.Now)
	}

	next := s.Clone()
	for {
		c, ok := next.Pending.Peek()
		if !ok || c.CompletionAt > timestamp {
			break
		}
		next.Pending.Pop()
		next.accrue(c.CompletionAt - next.Now)
		next.Now = c.CompletionAt
		next.apply(c)
	}

	next.accrue(timestamp - next.Now)
	next.Now = timestamp
	return next, nil
}

// accrue applies linear resource accrual for an interval at the
// production rate in effect at its start. The rate is
// piecewise-constant between events since only construction
// completions change it; resources clamp at storage caps at the end
// of the interval (overflow is lost).
func (s *GameState) accrue(seconds int) {
	if seconds <= 0 {
		return
	}

	hours := float64(seconds) / 3600.0
	rates := s.Village.ProductionPerHour()
	for _, rt := range models.AllResourceTypes() {
		s.Village.Stock.Add(rt, rates.Get(rt)*hours)
	}
	s.Village.Stock.Clamp(s.Village.Caps)
}

// apply commits a completed construction to the village
func (s *GameState) apply(c Construction) {
	switch c.Kind {
	case FieldConstruction:
		if f := s.Village.FieldAt(c.Position); f != nil {
			f.Level = c.TargetLevel
			f.CulturePointsPerHour = c.CulturePoints
		}
	case BuildingConstruction:
		if b := s.Village.BuildingAt(c.Position); b != nil {
			b.Level = c.TargetLevel
			b.CulturePointsPerHour = c.CulturePoints
		} else {
			// AddBuilding cannot fail here: commit already validated the
			// slot and nothing else inserts buildings mid-flight
			_ = s.Village.AddBuilding(models.VillageBuilding{
				ID:                   c.BuildingID,
				Name:                 c.BuildingName,
				Level:                c.TargetLevel,
				Position:             c.Position,
				Singleton:            c.Singleton,
				CulturePointsPerHour: c.CulturePoints,
			})
		}
	}

	s.Village.Population += c.Population

	// Storage effects raise the relevant caps
	if c.Effects != nil && c.Effects.StorageCapacity != nil {
		for _, rt := range c.StorageTypes {
			s.Village.Caps.Raise(rt, *c.Effects.StorageCapacity)
		}
	}
}
