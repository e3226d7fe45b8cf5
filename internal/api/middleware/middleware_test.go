package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/testutil"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	handler := rl.Middleware()(okHandler)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/security", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	for i, code := range codes[:3] {
		if code != http.StatusOK {
			t.Errorf("request %d status = %d, want 200", i, code)
		}
	}
	for i, code := range codes[3:] {
		if code != http.StatusTooManyRequests {
			t.Errorf("request %d status = %d, want 429", i+3, code)
		}
	}

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/security", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", rr.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := testutil.FixedNow
	rl := NewRateLimiter(10, 10)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(DefaultIdleTimeout / 2)
	rl.Allow("b")
	now = now.Add(DefaultIdleTimeout/2 + time.Second)

	if removed := rl.Cleanup(); removed != 1 {
		t.Errorf("Cleanup() removed %d, want 1", removed)
	}
	if rl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rl.Len())
	}
}

func TestRateLimiter_StartCleanupRejectsBadSchedule(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	if err := rl.StartCleanup("every minute", testutil.NewLogger()); err == nil {
		t.Fatal("StartCleanup() expected error for invalid schedule")
	}

	if err := rl.StartCleanup("*/5 * * * *", testutil.NewLogger()); err != nil {
		t.Fatalf("StartCleanup() error = %v", err)
	}
	rl.Stop()
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "error", Format: "json"}, &buf)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("secret detail")
	})

	rr := httptest.NewRecorder()
	Recovery(log)(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %q", body["error"])
	}
	if !strings.Contains(buf.String(), "secret detail") {
		t.Error("panic value should be logged")
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id %q, header %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Errorf("incoming id not kept, got %q", seen)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "info", Format: "json"}, &buf)

	handler := RequestID()(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddLogField(w, "view", "threats")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("hi"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/security?type=threats", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["status"] != float64(http.StatusTeapot) || entry["bytes"] != float64(2) {
		t.Errorf("entry = %v", entry)
	}
	if entry["view"] != "threats" || entry["query"] != "type=threats" {
		t.Errorf("entry = %v", entry)
	}
	if entry["request_id"] == "" {
		t.Error("request_id missing")
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(false)(okHandler)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/security", nil))
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("nosniff header missing")
	}
	if rr.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should be off")
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if !strings.Contains(rr.Header().Get("Content-Security-Policy"), "unsafe-inline") {
		t.Error("swagger pages need inline scripts")
	}
}
