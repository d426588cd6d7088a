package ai

import (
	"context"
	"encoding/json"

	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

// ProductInfo is the free-text product descriptor sent to the model.
// All fields are optional.
type ProductInfo struct {
	Name     string `json:"name,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
}

// Request carries everything the model sees for one analysis.
type Request struct {
	Facts   nutrition.Facts
	Product ProductInfo
	Profile *entity.HealthProfile // nil for anonymous scans
}

// Outcome is the tagged result of one provider call. Success false
// means the caller must fall back to the heuristic scorer; Err is a
// short internal reason, never surfaced to end users.
type Outcome struct {
	Success   bool
	Score     float64
	RiskLevel string // provider label, normalized by the analysis adapter
	Advice    string
	Analysis  json.RawMessage // structured payload (assessment, risk_factors, ...)
	Err       string
}

// Failure builds a failed outcome.
func Failure(reason string) Outcome {
	return Outcome{Err: reason}
}

// Analyzer produces a narrative health assessment from nutrient data.
// Implementations make exactly one attempt per call, respect ctx
// deadlines, and report provider problems through the outcome.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) Outcome
}
