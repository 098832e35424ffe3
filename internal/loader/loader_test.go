package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napolitain/solver-tvn/internal/models"
)

const buildingsFixture = `{
  "g15": {
    "building_name": "Main Building",
    "category": "Infrastructure",
    "max_level": 2,
    "levels": {
      "1": {
        "costs": {"wood": 70, "clay": 40, "iron": 60, "crop": 20},
        "build_time_seconds": 2620,
        "population": 2,
        "culture_points": 2,
        "effects": {"build_time_reduction": 100.0}
      },
      "2": {
        "costs": {"wood": 90, "clay": 50, "iron": 75, "crop": 25},
        "build_time_seconds": 3220,
        "population": 1,
        "culture_points": 3,
        "effects": {"build_time_reduction": 96.0}
      }
    }
  },
  "g10": {
    "building_name": "Warehouse",
    "max_level": 1,
    "levels": {
      "1": {
        "costs": {"wood": 130, "clay": 160, "iron": 90, "crop": 40},
        "build_time_seconds": 2000,
        "population": 1,
        "culture_points": 1,
        "effects": {"storage_capacity": 1200, "other_effects": {"oasis_bonus": 5}}
      }
    }
  }
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return dir
}

func TestLoadBuildings(t *testing.T) {
	dir := writeFixture(t, "buildings.json", buildingsFixture)

	buildings, err := LoadBuildings(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buildings) != 2 {
		t.Fatalf("expected 2 buildings, got %d", len(buildings))
	}

	// Sorted by id: g10 before g15
	if buildings[0].ID != "g10" || buildings[1].ID != "g15" {
		t.Errorf("expected [g10 g15], got [%s %s]", buildings[0].ID, buildings[1].ID)
	}

	mb := buildings[1]
	if mb.Name != "Main Building" || mb.MaxLevel != 2 {
		t.Errorf("unexpected main building: %+v", mb)
	}
	l2 := mb.LevelData(2)
	if l2 == nil {
		t.Fatal("expected level 2 data")
	}
	if l2.Cost.Wood != 90 || l2.BuildTimeSeconds != 3220 || l2.CulturePoints != 3 {
		t.Errorf("unexpected level 2 data: %+v", l2)
	}
	if l2.Effects == nil || l2.Effects.BuildTimeReduction == nil || *l2.Effects.BuildTimeReduction != 96.0 {
		t.Errorf("expected build time reduction 96.0, got %+v", l2.Effects)
	}
}

func TestLoadBuildingsOtherEffects(t *testing.T) {
	dir := writeFixture(t, "buildings.json", buildingsFixture)

	buildings, err := LoadBuildings(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	warehouse := buildings[0]
	l1 := warehouse.LevelData(1)
	if l1.Effects == nil || l1.Effects.StorageCapacity == nil || *l1.Effects.StorageCapacity != 1200 {
		t.Fatalf("expected storage capacity 1200, got %+v", l1.Effects)
	}
	if len(l1.Effects.Unclassified) != 1 {
		t.Fatalf("expected 1 unclassified effect, got %d", len(l1.Effects.Unclassified))
	}
	u := l1.Effects.Unclassified[0]
	if u.Name != "oasis_bonus" || u.Value != 5 {
		t.Errorf("unexpected unclassified effect: %+v", u)
	}
}

func TestLoadBuildingsMissingFile(t *testing.T) {
	if _, err := LoadBuildings(t.TempDir()); err == nil {
		t.Error("expected error for missing buildings.json")
	}
}

func TestLoadBuildingsMalformedJSON(t *testing.T) {
	dir := writeFixture(t, "buildings.json", "{not json")
	if _, err := LoadBuildings(dir); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadBuildingsBadLevelKey(t *testing.T) {
	dir := writeFixture(t, "buildings.json", `{
  "g1": {"building_name": "Woodcutter", "max_level": 1,
         "levels": {"one": {"costs": {"wood": 40}, "build_time_seconds": 260}}}
}`)
	if _, err := LoadBuildings(dir); err == nil {
		t.Error("expected error for non-numeric level key")
	}
}

func TestLoadBuildingsLevelOutOfRange(t *testing.T) {
	dir := writeFixture(t, "buildings.json", `{
  "g1": {"building_name": "Woodcutter", "max_level": 1,
         "levels": {"2": {"costs": {"wood": 40}, "build_time_seconds": 260}}}
}`)
	if _, err := LoadBuildings(dir); err == nil {
		t.Error("expected error for level above max_level")
	}
}

func TestLoadBuildingsUnknownResource(t *testing.T) {
	dir := writeFixture(t, "buildings.json", `{
  "g1": {"building_name": "Woodcutter", "max_level": 1,
         "levels": {"1": {"costs": {"gold": 40}, "build_time_seconds": 260}}}
}`)
	if _, err := LoadBuildings(dir); err == nil {
		t.Error("expected error for unknown resource type")
	}
}

func TestEffectsFromJSONEmpty(t *testing.T) {
	if e := effectsFromJSON(&EffectsJSON{}); e != nil {
		t.Errorf("empty effects should collapse to nil, got %+v", e)
	}
	if e := effectsFromJSON(nil); e != nil {
		t.Errorf("nil effects should stay nil, got %+v", e)
	}
}

func TestEffectsFromJSONAllResources(t *testing.T) {
	pct := 25.0
	e := effectsFromJSON(&EffectsJSON{WoodBonus: &pct, ClayBonus: &pct, IronBonus: &pct, CropBonus: &pct})
	if e == nil {
		t.Fatal("expected effects")
	}
	for _, rt := range models.AllResourceTypes() {
		if got := e.ProductionBonus(rt); got == nil || *got != 25.0 {
			t.Errorf("%s: expected bonus 25.0, got %v", rt, got)
		}
	}
}
