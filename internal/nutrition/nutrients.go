package nutrition

import (
	"strings"

	"github.com/nutriscan/nutrition-scanner/constants"
)

// Measurement is one extracted label value, unit verbatim as matched.
type Measurement struct {
	Value         float64 `json:"value"`
	Unit          string  `json:"unit"`
	SourceKeyword string  `json:"keyword"`
}

// Extraction maps canonical nutrient keys to raw measurements. Keys
// not found on the label are simply absent.
type Extraction map[constants.NutrientKey]Measurement

// Facts holds nutrient values normalized to canonical units: kJ and
// kcal for energy, grams for macros, milligrams for sodium. Nil means
// the label did not carry that nutrient.
type Facts struct {
	EnergyKJ     *float64
	EnergyKcal   *float64
	Protein      *float64
	Fat          *float64
	SaturatedFat *float64
	Carbohydrate *float64
	Sugar        *float64
	Fiber        *float64
	Sodium       *float64
}

// Empty reports whether no nutrient was extracted at all.
func (f Facts) Empty() bool {
	return f.EnergyKJ == nil && f.EnergyKcal == nil && f.Protein == nil &&
		f.Fat == nil && f.SaturatedFat == nil && f.Carbohydrate == nil &&
		f.Sugar == nil && f.Fiber == nil && f.Sodium == nil
}

const kcalToKJ = 4.184

// Normalize converts an extraction into canonical units. This is the
// single point where unit conversion happens; the parser records units
// verbatim and leaves conversion to callers.
func Normalize(ex Extraction) Facts {
	var f Facts
	for key, m := range ex {
		v := m.Value
		unit := strings.ToLower(strings.TrimSpace(m.Unit))
		switch key {
		case constants.NutrientEnergy:
			switch unit {
			case "kcal", "大卡", "卡", "卡路里":
				kcal := v
				kj := v * kcalToKJ
				f.EnergyKcal, f.EnergyKJ = &kcal, &kj
			default: // kJ is the label default in GB 28050 nutrition tables
				kj := v
				kcal := v / kcalToKJ
				f.EnergyKJ, f.EnergyKcal = &kj, &kcal
			}
		case constants.NutrientSodium:
			mg := v
			switch unit {
			case "g", "克":
				mg = v * 1000
			case "µg", "μg", "ug", "微克":
				mg = v / 1000
			}
			f.Sodium = &mg
		default:
			g := v
			switch unit {
			case "mg", "毫克":
				g = v / 1000
			case "µg", "μg", "ug", "微克":
				g = v / 1e6
			}
			switch key {
			case constants.NutrientProtein:
				f.Protein = &g
			case constants.NutrientFat:
				f.Fat = &g
			case constants.NutrientSaturatedFat:
				f.SaturatedFat = &g
			case constants.NutrientCarbohydrate:
				f.Carbohydrate = &g
			case constants.NutrientSugar:
				f.Sugar = &g
			case constants.NutrientFiber:
				f.Fiber = &g
			}
		}
	}
	return f
}
