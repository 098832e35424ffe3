package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/napolitain/solver-tvn/internal/models"
)

// Record is one row of the enhanced building dataset produced by the
// external data pipeline (one row per building level)
type Record struct {
	BuildingID        string `validate:"required"`
	BuildingName      string `validate:"required"`
	Category          string
	Level             int `validate:"gte=1,lte=100"`
	Wood              int `validate:"gte=0"`
	Clay              int `validate:"gte=0"`
	Iron              int `validate:"gte=0"`
	Crop              int `validate:"gte=0"`
	BuildTime         int `validate:"gte=0"`
	Population        int `validate:"gte=0"`
	CulturePoints     int `validate:"gte=0"`
	EffectType        string
	EffectValue       float64
	EffectUnit        string
	EffectDescription string
}

var validate = validator.New()

// LoadBuildingsCSV loads building data from the enhanced CSV file.
// Rows are grouped by building id in first-seen order and levels are
// sorted ascending; level contiguity and cost monotonicity are
// enforced by the catalog constructor.
func LoadBuildingsCSV(path string) ([]*models.BuildingData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return readBuildingsCSV(f)
}

func readBuildingsCSV(r io.Reader) ([]*models.BuildingData, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"building_id", "building_name", "level", "wood", "clay", "iron", "crop", "build_time"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	byID := make(map[string]*models.BuildingData)
	var order []string

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := recordFromRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid record: %w", line, err)
		}
		if !models.ValidBuildingID(rec.BuildingID) {
			return nil, fmt.Errorf("line %d: invalid building id %q", line, rec.BuildingID)
		}

		b, ok := byID[rec.BuildingID]
		if !ok {
			b = &models.BuildingData{
				ID:       rec.BuildingID,
				Name:     rec.BuildingName,
				Category: rec.Category,
			}
			byID[rec.BuildingID] = b
			order = append(order, rec.BuildingID)
		}

		b.Levels = append(b.Levels, models.BuildingLevel{
			Level:            rec.Level,
			Cost:             models.Costs{Wood: rec.Wood, Clay: rec.Clay, Iron: rec.Iron, Crop: rec.Crop},
			BuildTimeSeconds: rec.BuildTime,
			Population:       rec.Population,
			CulturePoints:    rec.CulturePoints,
			Effects:          effectFromRecord(rec),
		})
	}

	buildings := make([]*models.BuildingData, 0, len(order))
	for _, id := range order {
		b := byID[id]
		sort.Slice(b.Levels, func(i, j int) bool {
			return b.Levels[i].Level < b.Levels[j].Level
		})
		b.MaxLevel = len(b.Levels)
		buildings = append(buildings, b)
	}

	return buildings, nil
}

func recordFromRow(row []string, cols map[string]int) (*Record, error) {
	get := func(name string) string {
		if i, ok := cols[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}
	getInt := func(name string) (int, error) {
		s := get(name)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return v, nil
	}

	rec := &Record{
		BuildingID:        get("building_id"),
		BuildingName:      get("building_name"),
		Category:          get("category"),
		EffectType:        get("effect_type"),
		EffectUnit:        get("effect_unit"),
		EffectDescription: get("effect_description"),
	}

	var err error
	if rec.Level, err = getInt("level"); err != nil {
		return nil, err
	}
	if rec.Wood, err = getInt("wood"); err != nil {
		return nil, err
	}
	if rec.Clay, err = getInt("clay"); err != nil {
		return nil, err
	}
	if rec.Iron, err = getInt("iron"); err != nil {
		return nil, err
	}
	if rec.Crop, err = getInt("crop"); err != nil {
		return nil, err
	}
	if rec.BuildTime, err = getInt("build_time"); err != nil {
		return nil, err
	}
	if rec.Population, err = getInt("population"); err != nil {
		return nil, err
	}
	if rec.CulturePoints, err = getInt("culture_points"); err != nil {
		return nil, err
	}

	if s := get("effect_value"); s != "" {
		if rec.EffectValue, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("column %q: %w", "effect_value", err)
		}
	}

	return rec, nil
}

// effectFromRecord maps the row's single classified effect into the
// effects record; unknown effect types land in Unclassified
func effectFromRecord(rec *Record) *models.BuildingEffects {
	if rec.EffectType == "" {
		return nil
	}

	e := &models.BuildingEffects{}
	v := rec.EffectValue

	switch rec.EffectType {
	case "wood_bonus":
		e.WoodBonus = &v
	case "clay_bonus":
		e.ClayBonus = &v
	case "iron_bonus":
		e.IronBonus = &v
	case "crop_bonus":
		e.CropBonus = &v
	case "all_resources_bonus":
		e.SetProductionBonus(models.Wood, v)
		e.SetProductionBonus(models.Clay, v)
		e.SetProductionBonus(models.Iron, v)
		e.SetProductionBonus(models.Crop, v)
	case "storage_capacity":
		n := int(v)
		e.StorageCapacity = &n
	case "population_bonus":
		n := int(v)
		e.PopulationBonus = &n
	case "merchant_capacity":
		n := int(v)
		e.MerchantCapacity = &n
	case "training_time_reduction":
		e.TrainingTimeReduction = &v
	case "build_time_reduction":
		e.BuildTimeReduction = &v
	case "build_cost_reduction":
		e.BuildCostReduction = &v
	case "offensive_bonus":
		e.OffensiveBonus = &v
	case "defensive_bonus":
		e.DefensiveBonus = &v
	case "culture_points_bonus":
		e.CulturePointsBonus = &v
	default:
		e.Unclassified = append(e.Unclassified, models.UnclassifiedEffect{
			Name:  rec.EffectType,
			Value: v,
		})
	}

	return e
}
