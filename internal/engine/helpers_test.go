package engine

import (
	"math"
	"testing"

	"github.com/napolitain/solver-tvn/internal/catalog"
	"github.com/napolitain/solver-tvn/internal/models"
	"github.com/napolitain/solver-tvn/internal/village"
)

// growthLevels generates a level table with geometric cost growth and
// linear build time growth, close enough to live game data for tests
func growthLevels(base models.Costs, baseTime, count int) []models.BuildingLevel {
	levels := make([]models.BuildingLevel, count)
	for i := 0; i < count; i++ {
		k := math.Pow(1.28, float64(i))
		levels[i] = models.BuildingLevel{
			Level: i + 1,
			Cost: models.Costs{
				Wood: int(float64(base.Wood) * k),
				Clay: int(float64(base.Clay) * k),
				Iron: int(float64(base.Iron) * k),
				Crop: int(float64(base.Crop) * k),
			},
			BuildTimeSeconds: baseTime + i*baseTime/2,
			Population:       1,
			CulturePoints:    i + 1,
		}
	}
	return levels
}

func fieldData(id, name string, base models.Costs, baseTime int) *models.BuildingData {
	return &models.BuildingData{
		ID:       id,
		Name:     name,
		MaxLevel: 20,
		Levels:   growthLevels(base, baseTime, 20),
	}
}

func storageData(id, name string, base models.Costs, baseTime int) *models.BuildingData {
	levels := growthLevels(base, baseTime, 20)
	for i := range levels {
		capacity := 1200 + i*500
		levels[i].Effects = &models.BuildingEffects{StorageCapacity: &capacity}
	}
	return &models.BuildingData{
		ID:       id,
		Name:     name,
		MaxLevel: 20,
		Levels:   levels,
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	buildings := []*models.BuildingData{
		fieldData("g1", "Woodcutter", models.Costs{Wood: 40, Clay: 100, Iron: 50, Crop: 60}, 260),
		fieldData("g2", "Clay Pit", models.Costs{Wood: 80, Clay: 40, Iron: 80, Crop: 50}, 220),
		fieldData("g3", "Iron Mine", models.Costs{Wood: 100, Clay: 80, Iron: 30, Crop: 60}, 450),
		fieldData("g4", "Cropland", models.Costs{Wood: 70, Clay: 90, Iron: 70, Crop: 20}, 150),
		{
			ID:       "g15",
			Name:     "Main Building",
			MaxLevel: 25,
			Levels:   growthLevels(models.Costs{Wood: 70, Clay: 40, Iron: 60, Crop: 20}, 2620, 25),
		},
		{
			ID:       "g5",
			Name:     "Sawmill",
			MaxLevel: 5,
			Levels:   growthLevels(models.Costs{Wood: 100, Clay: 100, Iron: 100, Crop: 100}, 3000, 5),
		},
		storageData("g10", "Warehouse", models.Costs{Wood: 130, Clay: 160, Iron: 90, Crop: 40}, 2000),
		storageData("g11", "Granary", models.Costs{Wood: 80, Clay: 100, Iron: 70, Crop: 20}, 1600),
	}

	c, err := catalog.New(buildings, catalog.DefaultClassification())
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

func testVillage(t *testing.T) *village.Village {
	t.Helper()

	v, err := village.New("4-4-4-6", false)
	if err != nil {
		t.Fatalf("failed to create test village: %v", err)
	}
	v.Stock = models.Stock{Wood: 750, Clay: 750, Iron: 750, Crop: 750}
	return v
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := New(testCatalog(t), testVillage(t), 1)
	if err != nil {
		t.Fatalf("failed to create test engine: %v", err)
	}
	return e
}
