package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/internal/ai"
)

// Analyze implements ai.Analyzer against the DashScope text-generation
// API. The model is asked for JSON matching the analysis schema; any
// deviation (transport, HTTP, schema) collapses into a failed outcome
// so the pipeline can fall back to the heuristic scorer.
func (c *Client) Analyze(ctx context.Context, req ai.Request) ai.Outcome {
	rid := uuid.New().String()
	start := time.Now()

	if !c.Configured() {
		c.logger.Warn("qwen.analyze.unconfigured", "req_id", rid)
		return ai.Failure("qwen API key not configured")
	}

	schema := ai.BuildAnalysisJSONSchema()
	sys := buildSystemPrompt()
	user := buildUserPrompt(req)

	body := map[string]any{
		"model": c.cfg.Model,
		"input": map[string]any{
			"messages": []map[string]any{
				{"role": "system", "content": sys},
				{"role": "user", "content": user},
				{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			},
		},
		"parameters": map[string]any{
			"temperature": c.cfg.Temperature,
			"max_tokens":  c.cfg.MaxTokens,
			"top_p":       0.8,
		},
	}

	c.logger.Info("qwen.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"has_profile", req.Profile != nil,
		"product", req.Product.Name,
	)

	raw, err := c.post(ctx, body)
	if err != nil {
		c.logger.Error("qwen.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ai.Failure(fmt.Sprintf("qwen request failed: %v", err))
	}

	var out struct {
		Output struct {
			Text string `json:"text"`
		} `json:"output"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Error("qwen.analyze.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return ai.Failure("qwen response not parseable")
	}
	if out.Code != "" {
		c.logger.Error("qwen.analyze.api_error", "req_id", rid, "code", out.Code, "message", out.Message)
		return ai.Failure("qwen api error: " + out.Code)
	}
	content := stripCodeFence(strings.TrimSpace(out.Output.Text))
	if content == "" {
		c.logger.Error("qwen.analyze.empty_output", "req_id", rid)
		return ai.Failure("empty qwen output")
	}

	payload := []byte(content)
	if err := ai.ValidateJSONAgainstSchema(schema, payload); err != nil {
		c.logger.Error("qwen.analyze.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ai.Failure("qwen output failed schema validation")
	}

	var parsed struct {
		Score     float64 `json:"score"`
		RiskLevel string  `json:"risk_level"`
		Advice    string  `json:"advice"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		c.logger.Error("qwen.analyze.unmarshal_failed", "req_id", rid, "error", err)
		return ai.Failure("qwen output not parseable")
	}

	c.logger.Info("qwen.analyze.ok",
		"req_id", rid,
		"score", parsed.Score,
		"risk_level", parsed.RiskLevel,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ai.Outcome{
		Success:   true,
		Score:     parsed.Score,
		RiskLevel: parsed.RiskLevel,
		Advice:    parsed.Advice,
		Analysis:  json.RawMessage(payload),
	}
}

func (c *Client) post(ctx context.Context, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qwen http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("qwen response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("qwen status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func buildSystemPrompt() string {
	parts := []string{
		"你是一个专业的营养师AI助手。请分析用户提供的食品营养成分数据，给出专业的营养评估和健康建议。",
		"回答要简洁明了，适合普通消费者理解。",
		"Return ONLY JSON that matches the JSON Schema provided.",
		"score is 0-100; risk_level is one of low, medium, high, very_high.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req ai.Request) string {
	var b strings.Builder
	b.WriteString("请分析以下食品的营养成分数据（每100g），并给出健康建议。\n")

	if req.Product.Name != "" || req.Product.Brand != "" || req.Product.Category != "" {
		b.WriteString("产品信息：")
		if req.Product.Name != "" {
			b.WriteString("名称 " + req.Product.Name + "；")
		}
		if req.Product.Brand != "" {
			b.WriteString("品牌 " + req.Product.Brand + "；")
		}
		if req.Product.Category != "" {
			b.WriteString("类别 " + req.Product.Category + "；")
		}
		b.WriteString("\n")
	}

	b.WriteString("营养成分：\n")
	writeVal := func(label string, v *float64, unit string) {
		if v != nil {
			fmt.Fprintf(&b, "- %s：%.1f %s\n", label, *v, unit)
		}
	}
	writeVal("能量", req.Facts.EnergyKJ, "kJ")
	writeVal("蛋白质", req.Facts.Protein, "g")
	writeVal("脂肪", req.Facts.Fat, "g")
	writeVal("饱和脂肪", req.Facts.SaturatedFat, "g")
	writeVal("碳水化合物", req.Facts.Carbohydrate, "g")
	writeVal("糖", req.Facts.Sugar, "g")
	writeVal("膳食纤维", req.Facts.Fiber, "g")
	writeVal("钠", req.Facts.Sodium, "mg")

	if p := req.Profile; p != nil && !p.Empty() {
		b.WriteString("用户信息：\n")
		if p.Age != nil {
			fmt.Fprintf(&b, "- 年龄：%d\n", *p.Age)
		}
		if p.HealthConditions != nil {
			b.WriteString("- 健康状况：" + *p.HealthConditions + "\n")
		}
		if p.DietaryPreferences != nil {
			b.WriteString("- 饮食偏好：" + *p.DietaryPreferences + "\n")
		}
		if p.Allergies != nil {
			b.WriteString("- 过敏信息：" + *p.Allergies + "\n")
		}
	}
	return b.String()
}

// stripCodeFence drops a ```json ... ``` wrapper some models add
// around structured output.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
