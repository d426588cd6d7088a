package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/ai"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

// Result is the normalized analysis outcome, shaped exactly like what
// the heuristic scorer produces plus narrative fields. Success false
// tells the pipeline to substitute the heuristic result.
type Result struct {
	Success     bool
	Score       float64
	RiskLevel   constants.RiskLevel
	Advice      string
	Analysis    json.RawMessage
	RiskFactors json.RawMessage
}

// Adapter wraps the AI provider and normalizes whatever it returns.
// It makes a single attempt per detection with a fixed timeout; retry
// policy, if ever wanted, belongs to the caller.
type Adapter struct {
	analyzer ai.Analyzer
	timeout  time.Duration
	logger   *slog.Logger
}

func NewAdapter(analyzer ai.Analyzer, timeout time.Duration, logger *slog.Logger) *Adapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{analyzer: analyzer, timeout: timeout, logger: logger}
}

// Analyze calls the provider once and normalizes its outcome. A nil
// analyzer, provider failure, out-of-range score or unusable payload
// all come back as Success=false, never as an error.
func (a *Adapter) Analyze(ctx context.Context, req ai.Request) Result {
	if a.analyzer == nil {
		return Result{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out := a.analyzer.Analyze(ctx, req)
	if !out.Success {
		a.logger.Warn("analysis.provider_failed", "reason", out.Err)
		return Result{}
	}
	if out.Score < 0 || out.Score > 100 {
		a.logger.Warn("analysis.score_out_of_range", "score", out.Score)
		return Result{}
	}
	if out.Advice == "" {
		a.logger.Warn("analysis.empty_advice")
		return Result{}
	}

	risk, ok := constants.ParseRiskLevel(out.RiskLevel)
	if !ok || risk == constants.RiskUnknown {
		// provider label unusable; the score still anchors the band
		risk = nutrition.RiskForScore(out.Score)
	}

	return Result{
		Success:     true,
		Score:       out.Score,
		RiskLevel:   risk,
		Advice:      out.Advice,
		Analysis:    out.Analysis,
		RiskFactors: extractRiskFactors(out.Analysis),
	}
}

// extractRiskFactors pulls the risk_factors array out of the provider
// payload, if present and well formed.
func extractRiskFactors(payload json.RawMessage) json.RawMessage {
	if len(payload) == 0 {
		return nil
	}
	var probe struct {
		RiskFactors json.RawMessage `json:"risk_factors"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil
	}
	return probe.RiskFactors
}
