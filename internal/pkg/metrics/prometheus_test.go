package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/security", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/security", "418"))

	req := httptest.NewRequest(http.MethodGet, "/api/security?type=metrics", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/security", "418"))
	if after-before != 1 {
		t.Errorf("requests_total delta = %v, want 1", after-before)
	}
}

func TestRecordAction(t *testing.T) {
	before := testutil.ToFloat64(securityActionsTotal.WithLabelValues("scan", "accepted"))
	RecordAction("scan", "accepted")
	after := testutil.ToFloat64(securityActionsTotal.WithLabelValues("scan", "accepted"))
	if after-before != 1 {
		t.Errorf("actions_total delta = %v, want 1", after-before)
	}
}

func TestHandler_ExposesNamespace(t *testing.T) {
	SetDatasetRecords("threats", 3)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), `mssp_dataset_records{collection="threats"} 3`) {
		t.Error("metrics output missing dataset gauge")
	}
}
