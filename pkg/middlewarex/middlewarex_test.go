package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/middlewarex"
)

func TestTraceIDAndLogger(t *testing.T) {
	rq := require.New(t)

	var gotTraceID string

	h := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		_, err = contextx.LoggerFromContext(r.Context())
		rq.NoError(err)

		gotTraceID = traceID.String()
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes", http.NoBody)
	req.Header.Set("X-Trace-Id", "trace-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Equal("trace-1", gotTraceID)
	rq.Equal("trace-1", rec.Header().Get("X-Trace-Id"))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, rec.Code)
}

func TestMetrics(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(middlewarex.Metrics(reg))
	r.Get("/v1/calculations/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/calculations/"+id, http.NoBody))
	}

	families, err := reg.Gather()
	rq.NoError(err)

	var found bool

	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}

		rq.Len(f.GetMetric(), 1)

		m := f.GetMetric()[0]
		labels := map[string]string{}

		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}

		rq.Equal("/v1/calculations/{id}", labels["route"])
		rq.Equal("404", labels["status"])
		rq.Equal(3.0, m.GetCounter().GetValue())

		found = true
	}

	rq.True(found)
}
