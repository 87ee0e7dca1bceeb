package requestlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestMiddleware_SetsRequestIDAndLogs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := Middleware(log)(next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "http://example/api/auth/register", nil))

	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header to be set")
	}

	var line struct {
		RequestID string `json:"request_id"`
		Method    string `json:"method"`
		Path      string `json:"path"`
		Status    int    `json:"status"`
	}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON log line: %v", err)
	}
	if line.RequestID != w.Header().Get("X-Request-Id") {
		t.Fatalf("expected logged id to match header")
	}
	if line.Method != http.MethodPost || line.Path != "/api/auth/register" {
		t.Fatalf("unexpected method/path: %s %s", line.Method, line.Path)
	}
	if line.Status != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", line.Status)
	}
}
