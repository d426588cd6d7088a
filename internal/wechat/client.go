package wechat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nutriscan/nutrition-scanner/internal/common"
)

const defaultBaseURL = "https://api.weixin.qq.com"

// Config holds mini-program credential exchange settings.
type Config struct {
	BaseURL   string
	AppID     string
	AppSecret string
	Timeout   time.Duration
}

// Session is the identity returned for a login code.
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
}

// Client exchanges mini-program login codes for an OpenID.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
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

// Configured reports whether credentials are present. An unconfigured
// client makes Login unavailable; everything else still works.
func (c *Client) Configured() bool {
	return c.cfg.AppID != "" && c.cfg.AppSecret != ""
}

// CodeToSession resolves a jscode2session login code.
func (c *Client) CodeToSession(ctx context.Context, code string) (*Session, error) {
	if !c.Configured() {
		return nil, common.NewAppError("WECHAT_UNCONFIGURED", "wechat login is not configured", common.ErrInternal)
	}

	q := url.Values{}
	q.Set("appid", c.cfg.AppID)
	q.Set("secret", c.cfg.AppSecret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")
	endpoint := c.cfg.BaseURL + "/sns/jscode2session?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("wechat.login.request_failed", "error", err)
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("failed to close response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wechat login: status %d", resp.StatusCode)
	}

	var payload struct {
		Session
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("wechat login: decode response: %w", err)
	}
	if payload.ErrCode != 0 || payload.OpenID == "" {
		c.logger.Warn("wechat.login.rejected", "errcode", payload.ErrCode, "errmsg", payload.ErrMsg)
		return nil, common.NewAppError("WECHAT_LOGIN_FAILED",
			fmt.Sprintf("login code rejected (errcode %d)", payload.ErrCode), common.ErrUnauthorized)
	}
	return &payload.Session, nil
}
