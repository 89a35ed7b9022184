package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		checker    func() bool
		wantStatus string
		wantDB     string
	}{
		"database up":   {func() bool { return true }, "ok", "connected"},
		"database down": {func() bool { return false }, "degraded", "disconnected"},
		"no checker":    {nil, "degraded", "disconnected"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthController(tc.checker).Check)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body.Service != serviceName {
				t.Errorf("service = %q, want %q", body.Service, serviceName)
			}
			if body.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tc.wantStatus)
			}
			if body.Database != tc.wantDB {
				t.Errorf("database = %q, want %q", body.Database, tc.wantDB)
			}
		})
	}
}
