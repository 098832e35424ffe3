// Package loader reads the static building dataset produced by the
// external data pipeline into catalog entries. Two formats are
// supported: the buildings.json file and the enhanced per-level CSV.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/napolitain/solver-tvn/internal/models"
)

// BuildingJSON represents the JSON structure for a building entry
type BuildingJSON struct {
	BuildingName string                       `json:"building_name"`
	Category     string                       `json:"category,omitempty"`
	MaxLevel     int                          `json:"max_level"`
	Levels       map[string]BuildingLevelJSON `json:"levels"`
}

// BuildingLevelJSON represents the JSON structure for a building level
type BuildingLevelJSON struct {
	Costs            map[string]int `json:"costs"`
	BuildTimeSeconds int            `json:"build_time_seconds"`
	Population       int            `json:"population"`
	CulturePoints    int            `json:"culture_points"`
	Effects          *EffectsJSON   `json:"effects,omitempty"`
}

// EffectsJSON represents the JSON structure for building effects
type EffectsJSON struct {
	WoodBonus             *float64           `json:"wood_bonus,omitempty"`
	ClayBonus             *float64           `json:"clay_bonus,omitempty"`
	IronBonus             *float64           `json:"iron_bonus,omitempty"`
	CropBonus             *float64           `json:"crop_bonus,omitempty"`
	StorageCapacity       *int               `json:"storage_capacity,omitempty"`
	PopulationBonus       *int               `json:"population_bonus,omitempty"`
	MerchantCapacity      *int               `json:"merchant_capacity,omitempty"`
	TrainingTimeReduction *float64           `json:"training_time_reduction,omitempty"`
	BuildTimeReduction    *float64           `json:"build_time_reduction,omitempty"`
	BuildCostReduction    *float64           `json:"build_cost_reduction,omitempty"`
	OffensiveBonus        *float64           `json:"offensive_bonus,omitempty"`
	DefensiveBonus        *float64           `json:"defensive_bonus,omitempty"`
	CulturePointsBonus    *float64           `json:"culture_points_bonus,omitempty"`
	OtherEffects          map[string]float64 `json:"other_effects,omitempty"`
}

// LoadBuildings loads building data from buildings.json in dataDir.
// Entries are returned sorted by building id for deterministic catalog
// construction; integrity checks beyond structural parsing belong to
// the catalog constructor.
func LoadBuildings(dataDir string) ([]*models.BuildingData, error) {
	filePath := filepath.Join(dataDir, "buildings.json")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read buildings.json: %w", err)
	}

	var rawBuildings map[string]BuildingJSON
	if err := json.Unmarshal(data, &rawBuildings); err != nil {
		return nil, fmt.Errorf("failed to parse buildings.json: %w", err)
	}

	ids := make([]string, 0, len(rawBuildings))
	for id := range rawBuildings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	buildings := make([]*models.BuildingData, 0, len(ids))
	for _, id := range ids {
		raw := rawBuildings[id]
		b, err := buildingFromJSON(id, raw)
		if err != nil {
			return nil, fmt.Errorf("building %q: %w", id, err)
		}
		buildings = append(buildings, b)
	}

	return buildings, nil
}

func buildingFromJSON(id string, raw BuildingJSON) (*models.BuildingData, error) {
	b := &models.BuildingData{
		ID:       id,
		Name:     raw.BuildingName,
		Category: raw.Category,
		MaxLevel: raw.MaxLevel,
		Levels:   make([]models.BuildingLevel, raw.MaxLevel),
	}

	for levelStr, levelData := range raw.Levels {
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid level key %q", levelStr)
		}
		if level < 1 || level > raw.MaxLevel {
			return nil, fmt.Errorf("level %d outside 1-%d", level, raw.MaxLevel)
		}

		var costs models.Costs
		for res, amount := range levelData.Costs {
			switch models.ResourceType(res) {
			case models.Wood:
				costs.Wood = amount
			case models.Clay:
				costs.Clay = amount
			case models.Iron:
				costs.Iron = amount
			case models.Crop:
				costs.Crop = amount
			default:
				return nil, fmt.Errorf("level %d: unknown resource %q", level, res)
			}
		}

		b.Levels[level-1] = models.BuildingLevel{
			Level:            level,
			Cost:             costs,
			BuildTimeSeconds: levelData.BuildTimeSeconds,
			Population:       levelData.Population,
			CulturePoints:    levelData.CulturePoints,
			Effects:          effectsFromJSON(levelData.Effects),
		}
	}

	return b, nil
}

func effectsFromJSON(raw *EffectsJSON) *models.BuildingEffects {
	if raw == nil {
		return nil
	}

	e := &models.BuildingEffects{
		WoodBonus:             raw.WoodBonus,
		ClayBonus:             raw.ClayBonus,
		IronBonus:             raw.IronBonus,
		CropBonus:             raw.CropBonus,
		StorageCapacity:       raw.StorageCapacity,
		PopulationBonus:       raw.PopulationBonus,
		MerchantCapacity:      raw.MerchantCapacity,
		TrainingTimeReduction: raw.TrainingTimeReduction,
		BuildTimeReduction:    raw.BuildTimeReduction,
		BuildCostReduction:    raw.BuildCostReduction,
		OffensiveBonus:        raw.OffensiveBonus,
		DefensiveBonus:        raw.DefensiveBonus,
		CulturePointsBonus:    raw.CulturePointsBonus,
	}

	if len(raw.OtherEffects) > 0 {
		names := make([]string, 0, len(raw.OtherEffects))
		for name := range raw.OtherEffects {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			e.Unclassified = append(e.Unclassified, models.UnclassifiedEffect{
				Name:  name,
				Value: raw.OtherEffects[name],
			})
		}
	}

	if !e.HasEffects() {
		return nil
	}
	return e
}
