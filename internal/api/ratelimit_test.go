package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiter_Window(t *testing.T) {
	now := testStart
	l := NewRateLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 2; i >= 0; i-- {
		remaining, ok := l.Allow("a")
		if !ok || remaining != i {
			t.Fatalf("Allow = %d, %v; want %d, true", remaining, ok, i)
		}
	}
	if _, ok := l.Allow("a"); ok {
		t.Fatal("fourth request in window allowed")
	}
	if _, ok := l.Allow("b"); !ok {
		t.Fatal("other client limited")
	}

	now = now.Add(59 * time.Second)
	if _, ok := l.Allow("a"); ok {
		t.Fatal("allowed before window end")
	}

	now = now.Add(time.Second)
	if remaining, ok := l.Allow("a"); !ok || remaining != 2 {
		t.Fatalf("after window Allow = %d, %v", remaining, ok)
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := testStart
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}

	now = now.Add(2 * time.Minute)
	l.Allow("c")
	if l.Len() != 1 {
		t.Errorf("Len after sweep = %d, want 1", l.Len())
	}
}

func TestExampleEndpoint_RateLimited(t *testing.T) {
	h := newTestEnv(t).router()

	post := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/example", strings.NewReader(`{"name":"Ada"}`))
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	for i := range 10 {
		rr := post("198.51.100.7:4000")
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rr.Code)
		}
	}
	rr := post("198.51.100.7:4001")
	expectStatus(t, rr, http.StatusTooManyRequests)
	if got := rr.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
	if got := rr.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q", got)
	}
	body := decode[map[string]any](t, rr)
	if body["success"] != false || body["error"] != "Too many requests, please try again later." {
		t.Errorf("body = %v", body)
	}

	expectStatus(t, post("203.0.113.9:4000"), http.StatusOK)

	// Only /api/example is limited.
	expectStatus(t, doReq(h, http.MethodPost, "/api/hello", `{"name":"Ada"}`), http.StatusOK)
}
