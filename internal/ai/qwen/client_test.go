package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutriscan/nutrition-scanner/internal/ai"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "qwen-turbo",
	}, nil)
}

func dashscopeReply(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"output": map[string]any{"text": text},
	})
	return b
}

func sampleRequest() ai.Request {
	protein := 8.0
	sodium := 800.0
	age := 30
	conditions := "高血压"
	return ai.Request{
		Facts:   nutrition.Facts{Protein: &protein, Sodium: &sodium},
		Product: ai.ProductInfo{Name: "海盐薯片", Brand: "测试", Category: "膨化食品"},
		Profile: &entity.HealthProfile{Age: &age, HealthConditions: &conditions},
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write(dashscopeReply(`{"score":62,"risk_level":"medium","advice":"注意钠摄入","assessment":"钠偏高"}`))
	})

	out := c.Analyze(context.Background(), sampleRequest())
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if out.Score != 62 || out.RiskLevel != "medium" || out.Advice != "注意钠摄入" {
		t.Errorf("unexpected outcome: %+v", out)
	}
	if len(out.Analysis) == 0 {
		t.Error("expected analysis payload")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("missing bearer auth, got %q", gotAuth)
	}
	if gotBody["model"] != "qwen-turbo" {
		t.Errorf("model not sent: %v", gotBody["model"])
	}
	if _, ok := gotBody["input"].(map[string]any)["messages"]; !ok {
		t.Error("messages not sent in input block")
	}
}

func TestAnalyzeStripsCodeFence(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(dashscopeReply("```json\n{\"score\":85,\"risk_level\":\"low\",\"advice\":\"可以放心食用\"}\n```"))
	})
	out := c.Analyze(context.Background(), sampleRequest())
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if out.Score != 85 {
		t.Errorf("expected score 85, got %v", out.Score)
	}
}

func TestAnalyzeFailureModes(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "upstream broke", http.StatusBadGateway)
			},
		},
		{
			name: "api error code",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code":"InvalidApiKey","message":"no"}`))
			},
		},
		{
			name: "empty output",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(dashscopeReply(""))
			},
		},
		{
			name: "output is prose not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(dashscopeReply("这个食品还不错，建议适量食用。"))
			},
		},
		{
			name: "json missing required fields",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(dashscopeReply(`{"score":70}`))
			},
		},
		{
			name: "score outside schema range",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(dashscopeReply(`{"score":140,"risk_level":"low","advice":"x"}`))
			},
		},
		{
			name: "risk level outside enum",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(dashscopeReply(`{"score":70,"risk_level":"terrible","advice":"x"}`))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.handler)
			out := c.Analyze(context.Background(), sampleRequest())
			if out.Success {
				t.Errorf("expected failure, got %+v", out)
			}
			if out.Err == "" {
				t.Error("expected a failure reason")
			}
		})
	}
}

func TestAnalyzeUnconfigured(t *testing.T) {
	t.Setenv("QWEN_API_KEY", "")
	c := NewClient(Config{BaseURL: "http://localhost:0"}, nil)
	out := c.Analyze(context.Background(), sampleRequest())
	if out.Success {
		t.Errorf("expected failure without API key, got %+v", out)
	}
}
