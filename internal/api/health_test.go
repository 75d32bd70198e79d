package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckHealth(t *testing.T) {
	h := NewHealthHandler()

	readStatus := func() string {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rr := httptest.NewRecorder()
		h.CheckHealth(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("health endpoint must return 200, got %d", rr.Code)
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid health body: %v", err)
		}
		return body.Status
	}

	BindServiceHealth(func() bool { return false })
	if got := readStatus(); got != "unhealthy" {
		t.Fatalf("status=%q, want unhealthy", got)
	}

	BindServiceHealth(func() bool { return true })
	if got := readStatus(); got != "healthy" {
		t.Fatalf("status=%q, want healthy", got)
	}
}
