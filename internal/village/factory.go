package village

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/napolitain/solver-tvn/internal/models"
)

// standardTypes maps preset names to village type strings
var standardTypes = map[string]string{
	"start":                   "4-4-4-6", // Starting resource layout
	"wood5_clay3_iron4_crop6": "5-3-4-6",
	"wood5_clay4_iron3_crop6": "5-4-3-6",
	"wood3_clay5_iron4_crop6": "3-5-4-6",
	"wood4_clay5_iron3_crop6": "4-5-3-6",
	"wood3_clay4_iron5_crop6": "3-4-5-6",
	"wood4_clay3_iron5_crop6": "4-3-5-6",
	"wood3_clay4_iron4_crop7": "3-4-4-7", // Only on 3.5 and 4 edition
	"wood4_clay3_iron4_crop7": "4-3-4-7", // Only on 3.5 and 4 edition
	"wood4_clay4_iron3_crop7": "4-4-3-7", // Only on 3.5 and 4 edition
	"cropper9":                "3-3-3-9",  // 9-cropper
	"cropper15":               "1-1-1-15", // 15-cropper
}

// ParseType parses a village type string ("4-4-4-6") into field
// counts in wood, clay, iron, crop order. The four counts must be
// positive and sum to 18.
func ParseType(villageType string) (models.FieldCounts, error) {
	var counts models.FieldCounts

	parts := strings.Split(villageType, "-")
	if len(parts) != 4 {
		return counts, fmt.Errorf("%w: %q must have 4 numbers", ErrInvalidVillageType, villageType)
	}

	values := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return counts, fmt.Errorf("%w: %q is not numeric", ErrInvalidVillageType, villageType)
		}
		if n < 1 {
			return counts, fmt.Errorf("%w: %q needs at least 1 field per resource type", ErrInvalidVillageType, villageType)
		}
		values[i] = n
	}

	counts = models.FieldCounts{Wood: values[0], Clay: values[1], Iron: values[2], Crop: values[3]}
	if counts.Total() != models.FieldCount {
		return models.FieldCounts{}, fmt.Errorf("%w: %q must sum to %d", ErrInvalidVillageType, villageType, models.FieldCount)
	}

	return counts, nil
}

// New creates a village from a type string. Fields are allocated at
// positions 1-18 in wood, clay, iron, crop order, all at level 0, and
// the Main Building is seeded at level 1, position 19.
func New(villageType string, capital bool) (*Village, error) {
	counts, err := ParseType(villageType)
	if err != nil {
		return nil, err
	}

	v := &Village{
		ID:      uuid.NewString(),
		Type:    villageType,
		Capital: capital,
		Fields:  make([]models.ResourceField, 0, models.FieldCount),
		Caps: models.Caps{
			Wood: DefaultStorageCap,
			Clay: DefaultStorageCap,
			Iron: DefaultStorageCap,
			Crop: DefaultStorageCap,
		},
	}

	position := models.FieldPositionMin
	for _, rt := range models.AllResourceTypes() {
		for i := 0; i < counts.Get(rt); i++ {
			v.Fields = append(v.Fields, models.ResourceField{
				Type:     rt,
				Level:    0,
				Position: position,
			})
			position++
		}
	}

	v.Buildings = []models.VillageBuilding{{
		ID:        models.MainBuildingID,
		Name:      "Main Building",
		Level:     1,
		Position:  models.BuildingPositionMin,
		Singleton: true,
	}}

	return v, nil
}

// NewFromPreset creates a village from a standard preset name
func NewFromPreset(preset string, capital bool) (*Village, error) {
	villageType, ok := standardTypes[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return New(villageType, capital)
}

// Presets returns the names of all standard village presets
func Presets() []string {
	names := make([]string, 0, len(standardTypes))
	for name := range standardTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetType returns the village type string for a preset name
func PresetType(preset string) (string, error) {
	villageType, ok := standardTypes[preset]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return villageType, nil
}

// NewDeveloped creates a village with preset field levels and extra
// buildings, for mid-game scenarios and tests
func NewDeveloped(villageType string, capital bool, fieldLevels map[int]int, buildings []models.VillageBuilding) (*Village, error) {
	v, err := New(villageType, capital)
	if err != nil {
		return nil, err
	}

	for i := range v.Fields {
		if level, ok := fieldLevels[v.Fields[i].Position]; ok {
			if level < 0 || level > v.FieldMaxLevel() {
				return nil, fmt.Errorf("field level %d out of range for position %d", level, v.Fields[i].Position)
			}
			v.Fields[i].Level = level
		}
	}

	for _, b := range buildings {
		if err := v.AddBuilding(b); err != nil {
			return nil, err
		}
	}

	return v, nil
}
