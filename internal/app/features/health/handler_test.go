package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/whopinsights/internal/app/features/health"
	"github.com/dalemusser/whopinsights/internal/app/store/members"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	h := health.NewHandler(members.ModeMock, false, zap.NewNop())

	rec := httptest.NewRecorder()
	health.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status: got %v, want ok", body["status"])
	}
	if body["member_source"] != "mock" {
		t.Errorf("member_source: got %v, want mock", body["member_source"])
	}
	if body["oauth_configured"] != false {
		t.Errorf("oauth_configured: got %v, want false", body["oauth_configured"])
	}
}
