package nutrition

import (
	"math"

	"github.com/nutriscan/nutrition-scanner/constants"
)

// Assessment is the rule-derived health estimate for one label.
type Assessment struct {
	Score     float64
	RiskLevel constants.RiskLevel
}

const baseScore = 70.0

// Score computes the deterministic health score and risk band from
// normalized facts. Each adjustment is independent and bounded, so no
// single nutrient can dominate; missing nutrients contribute nothing.
// The thresholds below are the contract, not tunables.
func Score(f Facts) Assessment {
	score := baseScore

	if f.EnergyKJ != nil {
		switch {
		case *f.EnergyKJ < 1000:
			score += 5
		case *f.EnergyKJ > 2500:
			score -= 10
		}
	}
	if f.Protein != nil {
		switch {
		case *f.Protein >= 10:
			score += 10
		case *f.Protein >= 5:
			score += 5
		}
	}
	if f.Fat != nil {
		switch {
		case *f.Fat > 20:
			score -= 15
		case *f.Fat > 10:
			score -= 5
		case *f.Fat < 3:
			score += 5
		}
	}
	if f.Sodium != nil {
		switch {
		case *f.Sodium > 600:
			score -= 15
		case *f.Sodium > 300:
			score -= 5
		case *f.Sodium < 100:
			score += 5
		}
	}

	score = math.Round(clamp(score, 0, 100)*10) / 10

	risk := RiskForScore(score)
	if f.Empty() {
		risk = constants.RiskUnknown
	}
	return Assessment{Score: score, RiskLevel: risk}
}

// RiskForScore maps a 0-100 health score onto the fixed risk bands.
func RiskForScore(score float64) constants.RiskLevel {
	switch {
	case score >= 80:
		return constants.RiskLow
	case score >= 60:
		return constants.RiskMedium
	case score >= 40:
		return constants.RiskHigh
	default:
		return constants.RiskVeryHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
