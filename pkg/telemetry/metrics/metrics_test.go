package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"chargekit/ocpicheck/pkg/ocpi"
	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
)

func TestCollector_RecordValidation(t *testing.T) {
	c := NewCollector(nil)

	c.RecordValidation(ocpi.ValidationResult{
		ObjectType: ocpi.TypeLocation,
		IsValid:    true,
	}, 1024, 2*time.Millisecond)

	c.RecordValidation(ocpi.ValidationResult{
		ObjectType: ocpi.TypeToken,
		IsValid:    false,
		Errors: []*ocpiErrors.Error{
			ocpiErrors.MissingRequiredField("uid"),
			ocpiErrors.InvalidValue("whitelist", "Invalid tokens cannot have ALWAYS or ALLOWED_OFFLINE whitelist type"),
		},
	}, 512, time.Millisecond)

	if got := testutil.ToFloat64(c.validationsTotal.WithLabelValues("location", "valid")); got != 1 {
		t.Errorf("validations_total{location,valid} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.validationsTotal.WithLabelValues("token", "invalid")); got != 1 {
		t.Errorf("validations_total{token,invalid} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.errorsTotal.WithLabelValues("token", "missing_required_field")); got != 1 {
		t.Errorf("errors_total{token,missing_required_field} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.errorsTotal.WithLabelValues("token", "invalid_value")); got != 1 {
		t.Errorf("errors_total{token,invalid_value} = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	c.RecordValidation(ocpi.ValidationResult{
		ObjectType: ocpi.TypeCDR,
		IsValid:    true,
	}, 2048, 500*time.Microsecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "ocpicheck_validations_total") {
		t.Errorf("scrape output missing validations counter:\n%s", body)
	}
}
