package wechat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutriscan/nutrition-scanner/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		AppID:     "wx-test-app",
		AppSecret: "test-secret",
	}, nil)
}

func TestCodeToSessionSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sns/jscode2session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("appid") != "wx-test-app" || q.Get("secret") != "test-secret" {
			t.Error("credentials not forwarded")
		}
		if q.Get("js_code") != "code-123" {
			t.Errorf("unexpected js_code %q", q.Get("js_code"))
		}
		if q.Get("grant_type") != "authorization_code" {
			t.Errorf("unexpected grant_type %q", q.Get("grant_type"))
		}
		w.Write([]byte(`{"openid":"o-abc","session_key":"sk","unionid":"u-1"}`))
	})

	sess, err := c.CodeToSession(context.Background(), "code-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.OpenID != "o-abc" || sess.SessionKey != "sk" || sess.UnionID != "u-1" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestCodeToSessionRejected(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"errcode set", `{"errcode":40029,"errmsg":"invalid code"}`},
		{"empty openid", `{"openid":"","session_key":"sk"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tc.body))
			})
			_, err := c.CodeToSession(context.Background(), "bad-code")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, common.ErrUnauthorized) {
				t.Errorf("expected unauthorized, got %v", err)
			}
		})
	}
}

func TestCodeToSessionHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if _, err := c.CodeToSession(context.Background(), "code"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestCodeToSessionUnconfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	_, err := c.CodeToSession(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, common.ErrInternal) {
		t.Errorf("expected internal sentinel, got %v", err)
	}
	if c.Configured() {
		t.Error("client without credentials must report unconfigured")
	}
}
