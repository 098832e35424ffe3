package engine

import (
	"container/heap"

	"github.com/napolitain/solver-tvn/internal/models"
)

// ConstructionKind distinguishes resource field work from building work
type ConstructionKind int

const (
	FieldConstruction ConstructionKind = iota
	BuildingConstruction
)

// String returns a string representation of the construction kind
func (k ConstructionKind) String() string {
	switch k {
	case FieldConstruction:
		return "Field"
	case BuildingConstruction:
		return "Building"
	default:
		return "Unknown"
	}
}

// Construction is a committed but not yet completed build or upgrade.
// Its resources were reserved at commit time; the catalog payload
// (cost, population, effects) is resolved at commit so completion
// needs no catalog access.
type Construction struct {
	Kind         ConstructionKind
	Position     int
	TargetLevel  int
	CompletionAt int // Seconds since village creation
	Cost         models.Costs

	// Field payload
	FieldType models.ResourceType

	// Building payload
	BuildingID   string
	BuildingName string
	Singleton    bool

	// Catalog payload applied on completion
	Population    int
	CulturePoints int
	Effects       *models.BuildingEffects

	// StorageTypes lists the resource caps raised to Effects.StorageCapacity
	// on completion (warehouse: wood/clay/iron, granary: crop)
	StorageTypes []models.ResourceType

	// Sequence is the insertion order for stable sorting
	Sequence int64
}

// constructionHeap implements heap.Interface for a min-heap of
// constructions ordered by (CompletionAt, Sequence)
type constructionHeap []Construction

func (h constructionHeap) Len() int { return len(h) }

func (h constructionHeap) Less(i, j int) bool {
	if h[i].CompletionAt != h[j].CompletionAt {
		return h[i].CompletionAt < h[j].CompletionAt
	}
	return h[i].Sequence < h[j].Sequence
}

func (h constructionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *constructionHeap) Push(x any) {
	*h = append(*h, x.(Construction))
}

func (h *constructionHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// ConstructionQueue is a priority queue of pending constructions
// using a min-heap, deterministic for identical insertion sequences
type ConstructionQueue struct {
	h       constructionHeap
	nextSeq int64
}

// NewConstructionQueue creates a new empty queue
func NewConstructionQueue() *ConstructionQueue {
	q := &ConstructionQueue{h: make(constructionHeap, 0)}
	heap.Init(&q.h)
	return q
}

// Push adds a construction with automatic sequence assignment
func (q *ConstructionQueue) Push(c Construction) {
	q.nextSeq++
	c.Sequence = q.nextSeq
	heap.Push(&q.h, c)
}

// Pop removes and returns the construction with the earliest
// completion time; ok is false when the queue is empty
func (q *ConstructionQueue) Pop() (Construction, bool) {
	if len(q.h) == 0 {
		return Construction{}, false
	}
	return heap.Pop(&q.h).(Construction), true
}

// Peek returns the earliest construction without removing it
func (q *ConstructionQueue) Peek() (Construction, bool) {
	if len(q.h) == 0 {
		return Construction{}, false
	}
	return q.h[0], true
}

// Empty returns true if no constructions are pending
func (q *ConstructionQueue) Empty() bool {
	return len(q.h) == 0
}

// Len returns the number of pending constructions
func (q *ConstructionQueue) Len() int {
	return len(q.h)
}

// PendingAt reports whether a construction is already queued for the
// given position (a slot can hold one pending construction at a time)
func (q *ConstructionQueue) PendingAt(position int) bool {
	for i := range q.h {
		if q.h[i].Position == position {
			return true
		}
	}
	return false
}

// PendingBuilding reports whether a construction for the given
// building id is queued, at any position
func (q *ConstructionQueue) PendingBuilding(id string) bool {
	for i := range q.h {
		if q.h[i].BuildingID == id {
			return true
		}
	}
	return false
}

// Clone creates an independent copy of the queue
func (q *ConstructionQueue) Clone() *ConstructionQueue {
	clone := &ConstructionQueue{
		h:       make(constructionHeap, len(q.h)),
		nextSeq: q.nextSeq,
	}
	copy(clone.h, q.h)
	return clone
}

// Pending returns a copy of all pending constructions in heap order
// (for inspection; not sorted by completion time)
func (q *ConstructionQueue) Pending() []Construction {
	result := make([]Construction, len(q.h))
	copy(result, q.h)
	return result
}
