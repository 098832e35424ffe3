package village

import (
	"errors"
	"testing"

	"github.com/napolitain/solver-tvn/internal/models"
)

func TestAddBuildingChecks(t *testing.T) {
	v, err := New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name     string
		building models.VillageBuilding
		want     error
	}{
		{"below range", models.VillageBuilding{ID: "g10", Position: 18}, ErrPositionOutOfRange},
		{"above range", models.VillageBuilding{ID: "g10", Position: 41}, ErrPositionOutOfRange},
		{"occupied", models.VillageBuilding{ID: "g10", Position: 19}, ErrPositionOccupied},
		{"singleton twice", models.VillageBuilding{ID: models.MainBuildingID, Position: 20, Singleton: true}, ErrSingletonExists},
	}

	for _, tc := range cases {
		if err := v.AddBuilding(tc.building); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// Rejected additions never touch the building list
	if len(v.Buildings) != 1 {
		t.Errorf("failed additions must not mutate the village, got %d buildings", len(v.Buildings))
	}
}

func TestAddBuildingNonSingletonTwice(t *testing.T) {
	v, err := New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := models.VillageBuilding{ID: "g10", Name: "Warehouse", Level: 1, Position: 20}
	second := models.VillageBuilding{ID: "g10", Name: "Warehouse", Level: 1, Position: 21}

	if err := v.AddBuilding(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.AddBuilding(second); err != nil {
		t.Errorf("a second warehouse at another slot should be allowed: %v", err)
	}

	if b := v.BuildingByID("g10"); b == nil || b.Position != 20 {
		t.Errorf("BuildingByID should return the first match, got %+v", b)
	}
}

func TestFieldAt(t *testing.T) {
	v, err := New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f := v.FieldAt(1); f == nil || f.Type != models.Wood {
		t.Errorf("expected wood field at position 1, got %+v", f)
	}
	if f := v.FieldAt(19); f != nil {
		t.Errorf("position 19 is not a field, got %+v", f)
	}
}

func TestFieldMaxLevel(t *testing.T) {
	normal, _ := New("4-4-4-6", false)
	capital, _ := New("4-4-4-6", true)

	if got := normal.FieldMaxLevel(); got != 10 {
		t.Errorf("expected field cap 10, got %d", got)
	}
	if got := capital.FieldMaxLevel(); got != 20 {
		t.Errorf("expected capital field cap 20, got %d", got)
	}
}

func TestProductionPerHour(t *testing.T) {
	v, err := NewDeveloped("4-4-4-6", false, map[int]int{
		1: 2, // wood, 90/h
		5: 1, // clay, 30/h
		6: 1, // clay, 30/h
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := v.ProductionPerHour()
	if p.Wood != 90 {
		t.Errorf("expected 90 wood/h, got %v", p.Wood)
	}
	if p.Clay != 60 {
		t.Errorf("expected 60 clay/h, got %v", p.Clay)
	}
	if p.Iron != 0 || p.Crop != 0 {
		t.Errorf("undeveloped types should produce nothing, got iron=%v crop=%v", p.Iron, p.Crop)
	}
}

func TestCulturePointsPerHour(t *testing.T) {
	v, err := New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := v.CulturePointsPerHour(); got != 0 {
		t.Errorf("fresh village should produce no culture, got %d", got)
	}

	v.Fields[0].CulturePointsPerHour = 1
	v.Buildings[0].CulturePointsPerHour = 2
	if got := v.CulturePointsPerHour(); got != 3 {
		t.Errorf("expected 3 culture/h, got %d", got)
	}
}

func TestVillageClone(t *testing.T) {
	v, err := New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v.Stock = models.Stock{Wood: 750, Clay: 750, Iron: 750, Crop: 750}

	clone := v.Clone()

	clone.Fields[0].Level = 5
	clone.Buildings[0].Level = 3
	clone.Stock.Wood = 0
	clone.Population = 99

	if v.Fields[0].Level != 0 {
		t.Error("clone field mutation leaked into the original")
	}
	if v.Buildings[0].Level != 1 {
		t.Error("clone building mutation leaked into the original")
	}
	if v.Stock.Wood != 750 {
		t.Error("clone stock mutation leaked into the original")
	}
	if v.Population != 0 {
		t.Error("clone population mutation leaked into the original")
	}
	if clone.ID != v.ID || clone.Type != v.Type {
		t.Errorf("clone should keep identity: %s vs %s", clone.ID, v.ID)
	}
}
