package nutrition

import (
	"reflect"
	"testing"

	"github.com/nutriscan/nutrition-scanner/constants"
)

func TestParseTypicalLabel(t *testing.T) {
	p := NewParser()
	text := "营养成分表 能量 2100kJ 蛋白质: 8g 脂肪 25g 碳水化合物：30g 钠 800mg"

	got := p.Parse(text)

	want := map[constants.NutrientKey]Measurement{
		constants.NutrientEnergy:       {Value: 2100, Unit: "kJ", SourceKeyword: "能量"},
		constants.NutrientProtein:      {Value: 8, Unit: "g", SourceKeyword: "蛋白质"},
		constants.NutrientFat:          {Value: 25, Unit: "g", SourceKeyword: "脂肪"},
		constants.NutrientCarbohydrate: {Value: 30, Unit: "g", SourceKeyword: "碳水化合物"},
		constants.NutrientSodium:       {Value: 800, Unit: "mg", SourceKeyword: "钠"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d nutrients, got %d: %#v", len(want), len(got), got)
	}
	for key, m := range want {
		if !reflect.DeepEqual(got[key], m) {
			t.Errorf("%s: expected %#v, got %#v", key, m, got[key])
		}
	}
}

func TestParseSodiumWithColon(t *testing.T) {
	got := NewParser().Parse("钠: 800mg")
	m, ok := got[constants.NutrientSodium]
	if !ok {
		t.Fatalf("sodium not extracted: %#v", got)
	}
	if m.Value != 800 || m.Unit != "mg" {
		t.Errorf("expected 800 mg, got %v %s", m.Value, m.Unit)
	}
}

func TestParseSynonymPriority(t *testing.T) {
	// 能量 is the primary energy keyword; it wins even when a lower
	// priority synonym appears earlier in the text.
	got := NewParser().Parse("热量 500kJ 能量 2100kJ")
	m := got[constants.NutrientEnergy]
	if m.Value != 2100 {
		t.Errorf("expected primary keyword to win with 2100, got %v (keyword %q)", m.Value, m.SourceKeyword)
	}
}

func TestParseFirstMentionWins(t *testing.T) {
	got := NewParser().Parse("蛋白质 8g ... 蛋白质 12g")
	if m := got[constants.NutrientProtein]; m.Value != 8 {
		t.Errorf("expected first mention 8, got %v", m.Value)
	}
}

func TestParseSugarDoesNotMatchCarbohydrateSynonym(t *testing.T) {
	// 糖类 is a carbohydrate synonym; the bare 糖 keyword must not
	// steal its value.
	got := NewParser().Parse("糖类 30g")
	if _, ok := got[constants.NutrientSugar]; ok {
		t.Errorf("sugar falsely matched: %#v", got)
	}
	if m := got[constants.NutrientCarbohydrate]; m.Value != 30 {
		t.Errorf("expected carbohydrate 30, got %#v", got)
	}
}

func TestParseNeverFails(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"no nutrients", "配料：水、白砂糖、食用盐"},
		{"keyword without value", "蛋白质 丰富"},
		{"garbage", "@@@###!!!"},
	}
	p := NewParser()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.text)
			if len(got) != 0 {
				t.Errorf("expected empty extraction, got %#v", got)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	p := NewParser()
	text := "能量 2100kJ 蛋白质 8g"
	first := p.Parse(text)
	second := p.Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse not deterministic: %#v vs %#v", first, second)
	}
}

func TestParseTokens(t *testing.T) {
	p := NewParser()
	tokens := []Token{
		{Text: "钠", Confidence: 0.91},
		{Text: "800mg", Confidence: 0.88},
		{Text: "蛋白质", Confidence: 0.95},
		{Text: "8g", Confidence: 0.92},
	}
	got := p.ParseTokens(tokens)
	if m := got[constants.NutrientSodium]; m.Value != 800 || m.Unit != "mg" {
		t.Errorf("sodium: expected 800 mg, got %#v", m)
	}
	if m := got[constants.NutrientProtein]; m.Value != 8 {
		t.Errorf("protein: expected 8, got %#v", m)
	}

	if got := p.ParseTokens(nil); len(got) != 0 {
		t.Errorf("expected empty extraction for nil tokens, got %#v", got)
	}
}
