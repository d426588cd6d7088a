package analysis

import (
	"encoding/json"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

var heuristicAdvice = map[constants.RiskLevel]string{
	constants.RiskLow:      "营养成分总体均衡，可放心适量食用。",
	constants.RiskMedium:   "营养成分基本合理，注意控制食用量。",
	constants.RiskHigh:     "该食品存在较高营养风险，建议减少食用频率。",
	constants.RiskVeryHigh: "该食品营养风险很高，建议尽量避免食用。",
	constants.RiskUnknown:  "未能识别足够的营养成分，暂无法给出具体建议。",
}

// Heuristic derives a Result from the rule-based scorer alone. It is
// the fallback when the AI provider is unavailable or returns an
// unusable payload, and it always succeeds.
func Heuristic(facts nutrition.Facts) Result {
	a := nutrition.Score(facts)
	factors := heuristicRiskFactors(facts)

	payload, _ := json.Marshal(map[string]any{
		"source":       "heuristic",
		"risk_factors": factors,
	})
	var riskJSON json.RawMessage
	if len(factors) > 0 {
		riskJSON, _ = json.Marshal(factors)
	}

	return Result{
		Success:     true,
		Score:       a.Score,
		RiskLevel:   a.RiskLevel,
		Advice:      heuristicAdvice[a.RiskLevel],
		Analysis:    payload,
		RiskFactors: riskJSON,
	}
}

// heuristicRiskFactors names the nutrients that pulled the score down.
// The thresholds mirror the scorer's penalty branches.
func heuristicRiskFactors(f nutrition.Facts) []string {
	var out []string
	if f.EnergyKJ != nil && *f.EnergyKJ > 2500 {
		out = append(out, "能量偏高")
	}
	if f.Fat != nil && *f.Fat > 20 {
		out = append(out, "脂肪含量偏高")
	}
	if f.Sodium != nil && *f.Sodium > 600 {
		out = append(out, "钠含量偏高")
	}
	return out
}
