package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/indicators"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New("127.0.0.1:0", indicators.DefaultCatalog())
	gin.SetMode(gin.TestMode)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("missing nosniff header: %q", got)
	}
}

func TestIndicators(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		code  int
		count int
	}{
		{"", http.StatusOK, 12},
		{"?kind=badge", http.StatusOK, 4},
		{"?kind=alerts", http.StatusOK, 7},
		{"?kind=legacy", http.StatusOK, 1},
		{"?kind=bogus", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := get(t, s, "/api/indicators"+tt.query)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
			if tt.code != http.StatusOK {
				var body map[string]string
				decodeJSON(t, w, &body)
				if !strings.Contains(body["error"], `invalid kind "bogus"`) {
					t.Errorf("error = %q", body["error"])
				}
				return
			}
			var entries []map[string]any
			decodeJSON(t, w, &entries)
			if len(entries) != tt.count {
				t.Errorf("got %d entries, want %d", len(entries), tt.count)
			}
			if got := w.Header().Get("Cache-Control"); got != "public, max-age=300" {
				t.Errorf("Cache-Control = %q", got)
			}
		})
	}
}

func TestIndicatorByName(t *testing.T) {
	s := newTestServer(t)

	t.Run("badge", func(t *testing.T) {
		w := get(t, s, "/api/indicators/badges/semantic")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var b indicators.Badge
		decodeJSON(t, w, &b)
		if b.Text != "semantic" || b.LinkURL != indicators.DefaultPreciseURL {
			t.Errorf("badge = %+v", b)
		}
	})

	t.Run("alert", func(t *testing.T) {
		w := get(t, s, "/api/indicators/alerts/lsp")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var raw map[string]any
		decodeJSON(t, w, &raw)
		if _, ok := raw["type"]; ok {
			t.Error("non-dismissible alert should omit type")
		}
		if raw["iconKind"] != "info" {
			t.Errorf("iconKind = %v", raw["iconKind"])
		}
	})

	t.Run("legacy", func(t *testing.T) {
		w := get(t, s, "/api/indicators/legacy/imprecise")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var b indicators.BadgeIndicator
		decodeJSON(t, w, &b)
		if b.Icon != icon.Encode(indicators.DefaultDarkColor) {
			t.Errorf("icon = %s", b.Icon)
		}
	})

	for _, path := range []string{
		"/api/indicators/badges/lsp",
		"/api/indicators/alerts/semantic",
		"/api/indicators/legacy/nope",
	} {
		if w := get(t, s, path); w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
	}
}

func TestInfoIcon(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
		code  int
		color icon.Color
	}{
		{"default", "", http.StatusOK, indicators.DefaultDarkColor},
		{"light theme", "?theme=light", http.StatusOK, indicators.DefaultLightColor},
		{"explicit", "?color=%23ff0000", http.StatusOK, "#ff0000"},
		{"color beats theme", "?color=%23abc&theme=light", http.StatusOK, "#abc"},
		{"not hex", "?color=red", http.StatusBadRequest, ""},
		{"injection", "?color=%22%2F%3E%3Cscript%3E", http.StatusBadRequest, ""},
		{"bad theme", "?theme=sepia", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, "/api/icons/info"+tt.query)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
			if tt.code != http.StatusOK {
				return
			}
			var body struct {
				Color string `json:"color"`
				URI   string `json:"uri"`
			}
			decodeJSON(t, w, &body)
			if body.Color != string(tt.color) {
				t.Errorf("color = %q, want %q", body.Color, tt.color)
			}
			if body.URI != string(icon.Encode(tt.color)) {
				t.Errorf("uri mismatch for %s", tt.color)
			}
		})
	}
}

func TestInfoIconSVG(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/api/icons/info.svg?color=%23123456")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}

	uri := icon.Encode("#123456")
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(string(uri), icon.DataURIPrefix))
	if err != nil {
		t.Fatal(err)
	}
	if w.Body.String() != string(payload) {
		t.Errorf("svg body does not match encoded payload:\n%s\n%s", w.Body.String(), payload)
	}
}

func TestSwap(t *testing.T) {
	s := newTestServer(t)
	custom := indicators.NewCatalog(
		indicators.Links{Precise: "https://example.com/precise", Basic: "https://example.com/basic"},
		indicators.Palette{Dark: "#eeeeee", Light: "#111111"},
	)
	s.Swap(custom)
	s.Swap(nil)

	if s.Catalog() != custom {
		t.Fatal("Swap(nil) should keep the current catalog")
	}

	var b indicators.Badge
	decodeJSON(t, get(t, s, "/api/indicators/badges/semantic"), &b)
	if b.LinkURL != "https://example.com/precise" {
		t.Errorf("linkURL = %q after swap", b.LinkURL)
	}

	var body map[string]string
	decodeJSON(t, get(t, s, "/api/icons/info"), &body)
	if body["color"] != "#eeeeee" {
		t.Errorf("default color = %q after swap", body["color"])
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		cancel()
		t.Fatalf("GET /health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != `{"status":"ok"}` {
		t.Errorf("body = %s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	s := New("256.0.0.1:bad", indicators.DefaultCatalog())
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
