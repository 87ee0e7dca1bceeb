package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefaultKeyFunc_UsesFirstForwardedAddress(t *testing.T) {
	fn := DefaultKeyFunc()

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	if got := fn(r); got != "1.2.3.4" {
		t.Fatalf("expected first XFF ip, got %q", got)
	}
}

func TestDefaultKeyFunc_FallsBackToUnknownBucket(t *testing.T) {
	fn := DefaultKeyFunc()

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"

	// sem X-Forwarded-For todo mundo cai no mesmo balde, de propósito:
	// quem quiser precisão por IP fornece seu próprio KeyFn
	if got := fn(r); got != "unknown" {
		t.Fatalf("expected unknown bucket, got %q", got)
	}
}

func TestRemoteAddrKeyFunc_UsesRemoteHost(t *testing.T) {
	fn := RemoteAddrKeyFunc(false)

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4")

	if got := fn(r); got != "10.0.0.9" {
		t.Fatalf("expected remote host, got %q", got)
	}
}

func TestRemoteAddrKeyFunc_TrustXFFPrefersForwarded(t *testing.T) {
	fn := RemoteAddrKeyFunc(true)

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	if got := fn(r); got != "1.2.3.4" {
		t.Fatalf("expected first XFF ip, got %q", got)
	}
}
