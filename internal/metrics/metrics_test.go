package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCalculation(t *testing.T) {
	okBefore := testutil.ToFloat64(CalculationsTotal.WithLabelValues("coil", "ok"))
	badBefore := testutil.ToFloat64(CalculationsTotal.WithLabelValues("coil", "invalid"))

	ObserveCalculation("coil", nil)
	ObserveCalculation("coil", errors.New("bad"))
	ObserveCalculation("coil", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(CalculationsTotal.WithLabelValues("coil", "ok")))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(CalculationsTotal.WithLabelValues("coil", "invalid")))
}

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/api/materials/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues("GET", "/api/materials/{id}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/materials/copper", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddleware_CountsUnmatched(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.NotFoundHandler = Middleware(http.NotFoundHandler())
	r.HandleFunc("/api/materials", func(w http.ResponseWriter, r *http.Request) {})

	counter := HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
