package ai

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. It is sent to the model as an output constraint
// and used locally to validate whatever comes back.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "number",
				"minimum": 0.0,
				"maximum": 100.0,
			},
			"risk_level": map[string]any{
				"type": "string",
				"enum": []string{"low", "medium", "high", "very_high"},
			},
			"advice": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"assessment": map[string]any{"type": "string"},
			"risk_factors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"score", "risk_level", "advice"},
	}
}
