package nutrition

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nutriscan/nutrition-scanner/constants"
)

// Token is one recognized word with its OCR confidence, as delivered
// by the OCR provider.
type Token struct {
	Text       string
	Confidence float32
}

// synonym priority per canonical nutrient. First declared wins when a
// label mentions the same nutrient more than once, which keeps parsing
// deterministic regardless of token order.
var nutrientSynonyms = []struct {
	key      constants.NutrientKey
	keywords []string
}{
	{constants.NutrientEnergy, []string{"能量", "热量", "卡路里", "千焦", "kJ", "kcal"}},
	{constants.NutrientProtein, []string{"蛋白质", "蛋白"}},
	{constants.NutrientFat, []string{"总脂肪", "脂肪"}},
	{constants.NutrientSaturatedFat, []string{"饱和脂肪酸", "饱和脂肪"}},
	{constants.NutrientCarbohydrate, []string{"碳水化合物", "糖类"}},
	{constants.NutrientSugar, []string{"添加糖", "糖"}},
	{constants.NutrientFiber, []string{"膳食纤维", "纤维"}},
	{constants.NutrientSodium, []string{"钠", "盐"}},
}

// <keyword><optional colon noise><number><optional unit>. OCR output
// mixes full- and half-width colons and stray spaces, so both are
// tolerated between the label and the number.
var synonymPatterns = buildPatterns()

type synonymPattern struct {
	key     constants.NutrientKey
	keyword string
	re      *regexp.Regexp
}

func buildPatterns() []synonymPattern {
	var out []synonymPattern
	for _, n := range nutrientSynonyms {
		for _, kw := range n.keywords {
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) +
				`[：:]*[ 　\t]*(\d+(?:\.\d+)?)[ 　\t]*([a-zA-Zµμ]+|千焦|千卡|大卡|毫克|微克|克)?`)
			out = append(out, synonymPattern{key: n.key, keyword: kw, re: re})
		}
	}
	return out
}

// Parser extracts nutrient measurements from recognized label text.
// It holds no state and never fails; an unreadable label yields an
// empty extraction.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans text for each canonical nutrient, trying synonyms in
// priority order and keeping the first match per nutrient. Later
// mentions of an already matched nutrient are ignored.
func (p *Parser) Parse(text string) Extraction {
	out := make(Extraction)
	if strings.TrimSpace(text) == "" {
		return out
	}
	for _, sp := range synonymPatterns {
		if _, done := out[sp.key]; done {
			continue
		}
		m := sp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			// trailing garbage the regex let through; treat as no match
			continue
		}
		out[sp.key] = Measurement{Value: v, Unit: m[2], SourceKeyword: sp.keyword}
	}
	return out
}

// ParseTokens joins per-token OCR output into one blob and parses it.
// Token confidences are not used for matching; the blob keeps token
// order so line fragments still sit next to their values.
func (p *Parser) ParseTokens(tokens []Token) Extraction {
	if len(tokens) == 0 {
		return make(Extraction)
	}
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Text)
	}
	return p.Parse(strings.Join(parts, " "))
}
