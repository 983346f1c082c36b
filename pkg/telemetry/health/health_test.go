package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckLiveness(t *testing.T) {
	checker := New(0)

	status := checker.CheckLiveness(context.Background())
	if status.Status != "ok" {
		t.Errorf("CheckLiveness() status = %q, want ok", status.Status)
	}
}

func TestCheckReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus string
	}{
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: "ok",
		},
		{
			name: "all healthy",
			checks: map[string]CheckFunc{
				"history": func(ctx context.Context) error { return nil },
			},
			wantStatus: "ok",
		},
		{
			name: "one failing",
			checks: map[string]CheckFunc{
				"history": func(ctx context.Context) error { return nil },
				"broken":  func(ctx context.Context) error { return errors.New("down") },
			},
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := New(0)
			for name, check := range tt.checks {
				checker.RegisterCheck(name, check)
			}

			status := checker.CheckReadiness(context.Background())
			if status.Status != tt.wantStatus {
				t.Errorf("CheckReadiness() status = %q, want %q", status.Status, tt.wantStatus)
			}
			if len(status.Checks) != len(tt.checks) {
				t.Errorf("CheckReadiness() reported %d checks, want %d", len(status.Checks), len(tt.checks))
			}
		})
	}
}

func TestCheckReadinessTimeout(t *testing.T) {
	checker := New(10 * time.Millisecond)
	checker.RegisterCheck("slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	status := checker.CheckReadiness(context.Background())
	if status.Status != "unhealthy" {
		t.Errorf("CheckReadiness() status = %q, want unhealthy for timed-out probe", status.Status)
	}
}

func TestLivenessHandler(t *testing.T) {
	checker := New(0)

	rec := httptest.NewRecorder()
	checker.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("liveness status code = %d, want 200", rec.Code)
	}

	var status Status
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("liveness body status = %q, want ok", status.Status)
	}
}

func TestReadinessHandlerUnhealthy(t *testing.T) {
	checker := New(0)
	checker.RegisterCheck("store", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	rec := httptest.NewRecorder()
	checker.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readiness status code = %d, want 503", rec.Code)
	}

	var status Status
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if status.Checks["store"].Message != "connection refused" {
		t.Errorf("check message = %q, want connection refused", status.Checks["store"].Message)
	}
}
