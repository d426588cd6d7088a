package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

// Config for the cloud OCR client.
type Config struct {
	BaseURL   string        // general-OCR endpoint, no default: unset means "not configured"
	SecretID  string
	SecretKey string
	Timeout   time.Duration // http client timeout
}

// Client calls a hosted general-OCR API. The wire shape is the common
// text_detections list (text + confidence 0..100 per token).
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Configured reports whether the client has an endpoint to talk to.
func (c *Client) Configured() bool {
	return c.cfg.BaseURL != "" && c.cfg.SecretID != "" && c.cfg.SecretKey != ""
}

type detectionsResponse struct {
	TextDetections []struct {
		Text       string  `json:"text"`
		Confidence float32 `json:"confidence"` // 0..100
	} `json:"text_detections"`
	Error string `json:"error,omitempty"`
}

// Recognize sends the image and normalizes the provider response.
// Every failure mode collapses into Result{Success: false}; the
// pipeline decides what a failed recognition means for the record.
func (c *Client) Recognize(ctx context.Context, image []byte) Result {
	rid := uuid.New().String()
	start := time.Now()

	if !c.Configured() {
		c.logger.Warn("ocr.recognize.unconfigured", "req_id", rid)
		return Failure("OCR provider not configured")
	}
	if len(image) == 0 {
		return Failure("empty image")
	}

	body := map[string]any{
		"image":    base64.StdEncoding.EncodeToString(image),
		"language": "auto",
	}
	raw, err := c.post(ctx, body)
	if err != nil {
		c.logger.Error("ocr.recognize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Failure("OCR recognition failed")
	}

	var resp detectionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error("ocr.recognize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
		)
		return Failure("OCR recognition failed")
	}
	if resp.Error != "" {
		c.logger.Error("ocr.recognize.provider_error", "req_id", rid, "provider_error", resp.Error)
		return Failure("OCR recognition failed")
	}
	if len(resp.TextDetections) == 0 {
		c.logger.Warn("ocr.recognize.no_text", "req_id", rid)
		return Failure("no text detected")
	}

	tokens := make([]nutrition.Token, 0, len(resp.TextDetections))
	parts := make([]string, 0, len(resp.TextDetections))
	var confSum float32
	for _, d := range resp.TextDetections {
		tokens = append(tokens, nutrition.Token{Text: d.Text, Confidence: d.Confidence / 100})
		parts = append(parts, d.Text)
		confSum += d.Confidence
	}
	conf := confSum / float32(len(tokens)) / 100

	c.logger.Info("ocr.recognize.ok",
		"req_id", rid,
		"tokens", len(tokens),
		"confidence", conf,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Success:    true,
		Text:       strings.Join(parts, " "),
		Confidence: conf,
		Tokens:     tokens,
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
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Secret-Id", c.cfg.SecretID)
	req.Header.Set("X-Secret-Key", c.cfg.SecretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("ocr response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ocr status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
