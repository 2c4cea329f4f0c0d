package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestCheckWithoutStore(t *testing.T) {
	checker := NewChecker(nil, "test")

	report := checker.Check(context.Background())

	if report.Status != StatusHealthy {
		t.Errorf("Status = %v, want %v", report.Status, StatusHealthy)
	}
	if len(report.Checks) != 0 {
		t.Errorf("Checks = %v, want none without a store", report.Checks)
	}
}

func TestCheckUnreachableStore(t *testing.T) {
	// Port 1 is never a Redis server; the ping must fail fast.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	checker := NewChecker(client, "test")

	report := checker.Check(context.Background())

	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want %v", report.Status, StatusUnhealthy)
	}
	store, ok := report.Checks["plan_store"]
	if !ok {
		t.Fatalf("Checks missing plan_store entry: %v", report.Checks)
	}
	if store.Status != StatusUnhealthy || store.Error == "" {
		t.Errorf("plan_store = %+v, want unhealthy with error", store)
	}
}

func TestReportFeatures(t *testing.T) {
	checker := NewChecker(nil, "test")
	checker.ReportFeature("refresh_queue", true)
	checker.ReportFeature("result_recorder", false)

	report := checker.Check(context.Background())

	if !report.Features["refresh_queue"] {
		t.Errorf("Features[refresh_queue] = false, want true")
	}
	if report.Features["result_recorder"] {
		t.Errorf("Features[result_recorder] = true, want false")
	}
}

func TestReadyHandlerStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		store      *redis.Client
		wantStatus int
	}{
		{
			name:       "no store configured",
			store:      nil,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unreachable store",
			store:      redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.store != nil {
				defer tt.store.Close()
			}

			checker := NewChecker(tt.store, "test")
			checker.ReportFeature("refresh_queue", false)

			r := gin.New()
			r.GET("/health/ready", checker.ReadyHandler())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var report Report
			if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
				t.Fatalf("failed to decode report: %v", err)
			}
			if report.Version != "test" {
				t.Errorf("Version = %q, want %q", report.Version, "test")
			}
			if _, ok := report.Features["refresh_queue"]; !ok {
				t.Errorf("Features missing refresh_queue: %v", report.Features)
			}
		})
	}
}
