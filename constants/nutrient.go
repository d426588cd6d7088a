package constants

// NutrientKey is a canonical nutrient name used across the parser, the
// scorer and the detections table. Values extracted from labels are
// keyed by these names; anything else lands in the other-nutrients bag.
type NutrientKey string

const (
	NutrientEnergy       NutrientKey = "energy"        // kJ (kcal kept alongside)
	NutrientProtein      NutrientKey = "protein"       // g
	NutrientFat          NutrientKey = "fat"           // g
	NutrientSaturatedFat NutrientKey = "saturated_fat" // g
	NutrientCarbohydrate NutrientKey = "carbohydrate"  // g
	NutrientSugar        NutrientKey = "sugar"         // g
	NutrientFiber        NutrientKey = "fiber"         // g
	NutrientSodium       NutrientKey = "sodium"        // mg
)

// StandardNutrients lists the closed set of strongly typed nutrient
// columns, in label order.
var StandardNutrients = []NutrientKey{
	NutrientEnergy,
	NutrientProtein,
	NutrientFat,
	NutrientSaturatedFat,
	NutrientCarbohydrate,
	NutrientSugar,
	NutrientFiber,
	NutrientSodium,
}

// IsStandard reports whether key is one of the closed nutrient columns.
func IsStandard(key NutrientKey) bool {
	for _, k := range StandardNutrients {
		if k == key {
			return true
		}
	}
	return false
}
