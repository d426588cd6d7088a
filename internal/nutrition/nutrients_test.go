package nutrition

import (
	"math"
	"testing"

	"github.com/nutriscan/nutrition-scanner/constants"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNormalizeEnergy(t *testing.T) {
	t.Run("kcal converts to kJ", func(t *testing.T) {
		f := Normalize(Extraction{
			constants.NutrientEnergy: {Value: 100, Unit: "kcal"},
		})
		if f.EnergyKcal == nil || !almost(*f.EnergyKcal, 100) {
			t.Fatalf("kcal: got %v", f.EnergyKcal)
		}
		if f.EnergyKJ == nil || !almost(*f.EnergyKJ, 418.4) {
			t.Fatalf("kJ: got %v", f.EnergyKJ)
		}
	})
	t.Run("unitless defaults to kJ", func(t *testing.T) {
		f := Normalize(Extraction{
			constants.NutrientEnergy: {Value: 2100, Unit: ""},
		})
		if f.EnergyKJ == nil || !almost(*f.EnergyKJ, 2100) {
			t.Fatalf("kJ: got %v", f.EnergyKJ)
		}
		if f.EnergyKcal == nil || !almost(*f.EnergyKcal, 2100/4.184) {
			t.Fatalf("kcal: got %v", f.EnergyKcal)
		}
	})
	t.Run("chinese kcal unit", func(t *testing.T) {
		f := Normalize(Extraction{
			constants.NutrientEnergy: {Value: 50, Unit: "大卡"},
		})
		if f.EnergyKcal == nil || !almost(*f.EnergyKcal, 50) {
			t.Fatalf("kcal: got %v", f.EnergyKcal)
		}
	})
}

func TestNormalizeSodiumToMilligrams(t *testing.T) {
	cases := []struct {
		name string
		m    Measurement
		want float64
	}{
		{"mg passthrough", Measurement{Value: 800, Unit: "mg"}, 800},
		{"grams scale up", Measurement{Value: 0.8, Unit: "g"}, 800},
		{"chinese grams", Measurement{Value: 1.2, Unit: "克"}, 1200},
		{"micrograms scale down", Measurement{Value: 1000, Unit: "µg"}, 1},
		{"unitless defaults to mg", Measurement{Value: 500, Unit: ""}, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Normalize(Extraction{constants.NutrientSodium: tc.m})
			if f.Sodium == nil || !almost(*f.Sodium, tc.want) {
				t.Errorf("expected %v mg, got %v", tc.want, f.Sodium)
			}
		})
	}
}

func TestNormalizeMacrosToGrams(t *testing.T) {
	f := Normalize(Extraction{
		constants.NutrientProtein: {Value: 500, Unit: "mg"},
		constants.NutrientFat:     {Value: 25, Unit: "g"},
		constants.NutrientSugar:   {Value: 2, Unit: "毫克"},
		constants.NutrientFiber:   {Value: 3, Unit: ""},
	})
	if f.Protein == nil || !almost(*f.Protein, 0.5) {
		t.Errorf("protein: got %v", f.Protein)
	}
	if f.Fat == nil || !almost(*f.Fat, 25) {
		t.Errorf("fat: got %v", f.Fat)
	}
	if f.Sugar == nil || !almost(*f.Sugar, 0.002) {
		t.Errorf("sugar: got %v", f.Sugar)
	}
	if f.Fiber == nil || !almost(*f.Fiber, 3) {
		t.Errorf("fiber: got %v", f.Fiber)
	}
}

func TestFactsEmpty(t *testing.T) {
	if !(Facts{}).Empty() {
		t.Error("zero facts should be empty")
	}
	v := 1.0
	if (Facts{Sodium: &v}).Empty() {
		t.Error("facts with sodium should not be empty")
	}
	if !Normalize(Extraction{}).Empty() {
		t.Error("normalizing an empty extraction should stay empty")
	}
}
