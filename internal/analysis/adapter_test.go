package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/ai"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

type fakeAnalyzer struct {
	outcome ai.Outcome
	calls   int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ ai.Request) ai.Outcome {
	f.calls++
	return f.outcome
}

func TestAdapterPassesThroughSuccess(t *testing.T) {
	payload := json.RawMessage(`{"score":85,"risk_level":"low","advice":"适量食用","risk_factors":["钠含量偏高"]}`)
	fake := &fakeAnalyzer{outcome: ai.Outcome{
		Success:   true,
		Score:     85,
		RiskLevel: "low",
		Advice:    "适量食用",
		Analysis:  payload,
	}}
	a := NewAdapter(fake, 0, nil)

	got := a.Analyze(context.Background(), ai.Request{})
	if !got.Success {
		t.Fatal("expected success")
	}
	if got.Score != 85 || got.RiskLevel != constants.RiskLow || got.Advice != "适量食用" {
		t.Errorf("unexpected result: %+v", got)
	}
	if string(got.RiskFactors) != `["钠含量偏高"]` {
		t.Errorf("risk factors not extracted: %s", got.RiskFactors)
	}
	if fake.calls != 1 {
		t.Errorf("expected exactly one provider call, got %d", fake.calls)
	}
}

func TestAdapterFailureModes(t *testing.T) {
	cases := []struct {
		name    string
		outcome ai.Outcome
	}{
		{"provider failure", ai.Failure("timeout")},
		{"score above range", ai.Outcome{Success: true, Score: 150, RiskLevel: "low", Advice: "x"}},
		{"score below range", ai.Outcome{Success: true, Score: -1, RiskLevel: "low", Advice: "x"}},
		{"empty advice", ai.Outcome{Success: true, Score: 50, RiskLevel: "medium"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAdapter(&fakeAnalyzer{outcome: tc.outcome}, 0, nil)
			if got := a.Analyze(context.Background(), ai.Request{}); got.Success {
				t.Errorf("expected failure, got %+v", got)
			}
		})
	}
}

func TestAdapterNormalizesBadRiskLabel(t *testing.T) {
	fake := &fakeAnalyzer{outcome: ai.Outcome{
		Success:   true,
		Score:     85,
		RiskLevel: "extremely_low", // not a known band
		Advice:    "ok",
	}}
	a := NewAdapter(fake, 0, nil)

	got := a.Analyze(context.Background(), ai.Request{})
	if !got.Success {
		t.Fatal("expected success")
	}
	if got.RiskLevel != constants.RiskLow {
		t.Errorf("expected risk derived from score (low), got %s", got.RiskLevel)
	}
}

func TestAdapterNilAnalyzer(t *testing.T) {
	a := NewAdapter(nil, 0, nil)
	if got := a.Analyze(context.Background(), ai.Request{}); got.Success {
		t.Errorf("expected failure for nil analyzer, got %+v", got)
	}
}

func TestHeuristicEmptyFacts(t *testing.T) {
	got := Heuristic(nutrition.Facts{})
	if !got.Success {
		t.Fatal("heuristic must always succeed")
	}
	if got.Score != 70.0 {
		t.Errorf("expected base score 70.0, got %v", got.Score)
	}
	if got.RiskLevel != constants.RiskUnknown {
		t.Errorf("expected unknown risk, got %s", got.RiskLevel)
	}
	if got.Advice == "" {
		t.Error("expected advice text")
	}
	if len(got.RiskFactors) != 0 {
		t.Errorf("expected no risk factors, got %s", got.RiskFactors)
	}
}

func TestHeuristicRiskFactors(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	got := Heuristic(nutrition.Facts{
		EnergyKJ: v(3000),
		Fat:      v(25),
		Sodium:   v(700),
	})
	if !got.Success {
		t.Fatal("heuristic must always succeed")
	}

	var factors []string
	if err := json.Unmarshal(got.RiskFactors, &factors); err != nil {
		t.Fatalf("risk factors not a string array: %v", err)
	}
	if len(factors) != 3 {
		t.Errorf("expected 3 risk factors, got %v", factors)
	}

	var payload struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(got.Analysis, &payload); err != nil {
		t.Fatalf("analysis payload not parseable: %v", err)
	}
	if payload.Source != "heuristic" {
		t.Errorf("expected heuristic source marker, got %q", payload.Source)
	}
}
