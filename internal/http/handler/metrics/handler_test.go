package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "billet",
		Name:      "test_total",
		Help:      "Test counter",
	})

	registry.MustRegister(counter)
	counter.Add(3)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	NewHandler(registry).ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "billet_test_total 3", res.Body.String(); !strings.Contains(g, e) {
		t.Errorf("res.Body: expected to contain '%v', got '%v'", e, g)
	}
}
