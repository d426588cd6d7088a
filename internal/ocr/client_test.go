package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		SecretID:  "id",
		SecretKey: "key",
	}, nil)
}

func TestRecognizeSuccess(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF} // jpeg magic is enough for the wire test
	var gotImage string
	var gotSecret string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Secret-Id")
		var body struct {
			Image string `json:"image"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotImage = body.Image
		_, _ = w.Write([]byte(`{"text_detections":[
			{"text":"能量","confidence":96},
			{"text":"2100kJ","confidence":88}
		]}`))
	})

	res := c.Recognize(context.Background(), image)
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Text != "能量 2100kJ" {
		t.Errorf("joined text: got %q", res.Text)
	}
	if len(res.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(res.Tokens))
	}
	if math.Abs(float64(res.Confidence)-0.92) > 1e-4 {
		t.Errorf("mean confidence: expected 0.92, got %v", res.Confidence)
	}
	if math.Abs(float64(res.Tokens[0].Confidence)-0.96) > 1e-4 {
		t.Errorf("token confidence: expected 0.96, got %v", res.Tokens[0].Confidence)
	}
	if gotImage != base64.StdEncoding.EncodeToString(image) {
		t.Error("image not sent base64 encoded")
	}
	if gotSecret != "id" {
		t.Errorf("secret header missing, got %q", gotSecret)
	}
}

func TestRecognizeFailureModes(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "no text detected",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"text_detections":[]}`))
			},
			wantErr: "no text detected",
		},
		{
			name: "provider error field",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"error":"image too small"}`))
			},
			wantErr: "OCR recognition failed",
		},
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: "OCR recognition failed",
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: "OCR recognition failed",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.handler)
			res := c.Recognize(context.Background(), []byte{1})
			if res.Success {
				t.Fatalf("expected failure, got %+v", res)
			}
			if res.Err != tc.wantErr {
				t.Errorf("expected reason %q, got %q", tc.wantErr, res.Err)
			}
		})
	}
}

func TestRecognizeUnconfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	res := c.Recognize(context.Background(), []byte{1})
	if res.Success {
		t.Fatalf("expected failure, got %+v", res)
	}
}

func TestRecognizeEmptyImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected for empty image")
	})
	if res := c.Recognize(context.Background(), nil); res.Success {
		t.Fatalf("expected failure, got %+v", res)
	}
}
