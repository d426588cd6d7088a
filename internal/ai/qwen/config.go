package qwen

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Qwen (DashScope) client.
type Config struct {
	APIKey      string        // if empty, falls back to env QWEN_API_KEY
	BaseURL     string        // default DashScope text-generation endpoint
	Model       string        // e.g. "qwen-turbo"
	Temperature float32       // 0..2
	MaxTokens   int           // response token cap
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("QWEN_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen-turbo"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1500
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
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

// Configured reports whether an API key is present. An unconfigured
// client fails every call, which the pipeline absorbs as fallback.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}
