package nutrition

import (
	"testing"

	"github.com/nutriscan/nutrition-scanner/constants"
)

func fp(v float64) *float64 { return &v }

func TestScoreEmptyFacts(t *testing.T) {
	got := Score(Facts{})
	if got.Score != 70.0 {
		t.Errorf("expected base score 70.0, got %v", got.Score)
	}
	if got.RiskLevel != constants.RiskUnknown {
		t.Errorf("expected unknown risk for empty facts, got %s", got.RiskLevel)
	}
}

func TestScoreAdjustments(t *testing.T) {
	cases := []struct {
		name      string
		facts     Facts
		wantScore float64
		wantRisk  constants.RiskLevel
	}{
		{
			name:      "high energy fatty salty snack",
			facts:     Facts{EnergyKJ: fp(2600), Protein: fp(12), Fat: fp(25), Sodium: fp(800)},
			wantScore: 40.0, // 70 -10 +10 -15 -15
			wantRisk:  constants.RiskHigh,
		},
		{
			name:      "moderate energy fatty salty snack",
			facts:     Facts{EnergyKJ: fp(2100), Protein: fp(12), Fat: fp(25), Sodium: fp(800)},
			wantScore: 50.0, // 70 +10 -15 -15
			wantRisk:  constants.RiskHigh,
		},
		{
			name:      "lean high protein food",
			facts:     Facts{EnergyKJ: fp(900), Protein: fp(20), Fat: fp(1), Sodium: fp(50)},
			wantScore: 95.0, // 70 +5 +10 +5 +5
			wantRisk:  constants.RiskLow,
		},
		{
			name:      "single nutrient protein only",
			facts:     Facts{Protein: fp(8)},
			wantScore: 75.0, // 70 +5
			wantRisk:  constants.RiskMedium,
		},
		{
			name:      "boundary values adjust per the closed thresholds",
			facts:     Facts{Protein: fp(10), Fat: fp(20), Sodium: fp(600)},
			wantScore: 70.0, // 70 +10 -5 -5
			wantRisk:  constants.RiskMedium,
		},
		{
			name:      "neutral midrange values",
			facts:     Facts{EnergyKJ: fp(1500), Fat: fp(5), Sodium: fp(200)},
			wantScore: 70.0,
			wantRisk:  constants.RiskMedium,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.facts)
			if got.Score != tc.wantScore {
				t.Errorf("score: expected %v, got %v", tc.wantScore, got.Score)
			}
			if got.RiskLevel != tc.wantRisk {
				t.Errorf("risk: expected %s, got %s", tc.wantRisk, got.RiskLevel)
			}
		})
	}
}

func TestScoreStaysInBounds(t *testing.T) {
	worst := Score(Facts{EnergyKJ: fp(5000), Fat: fp(50), Sodium: fp(2000)})
	if worst.Score < 0 || worst.Score > 100 {
		t.Errorf("score out of bounds: %v", worst.Score)
	}
	best := Score(Facts{EnergyKJ: fp(500), Protein: fp(30), Fat: fp(0.5), Sodium: fp(10)})
	if best.Score < 0 || best.Score > 100 {
		t.Errorf("score out of bounds: %v", best.Score)
	}
}

func TestRiskForScoreBands(t *testing.T) {
	cases := []struct {
		score float64
		want  constants.RiskLevel
	}{
		{100, constants.RiskLow},
		{80, constants.RiskLow},
		{79.9, constants.RiskMedium},
		{60, constants.RiskMedium},
		{59.9, constants.RiskHigh},
		{40, constants.RiskHigh},
		{39.9, constants.RiskVeryHigh},
		{0, constants.RiskVeryHigh},
	}
	for _, tc := range cases {
		if got := RiskForScore(tc.score); got != tc.want {
			t.Errorf("RiskForScore(%v): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
