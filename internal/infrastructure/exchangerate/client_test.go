package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/infrastructure/exchangerate"
	"ebay_pricer/pkg/httpx"
)

const latestUSD = `{
	"result": "success",
	"base_code": "USD",
	"time_last_update_unix": 1760659351,
	"rates": {"USD": 1, "THB": 32.6871, "EUR": 0.8571}
}`

func TestClientRate(t *testing.T) {
	rq := require.New(t)

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		rq.Equal("/v6/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(latestUSD)) //nolint:errcheck
	}))
	defer srv.Close()

	client := exchangerate.NewClient(
		srv.URL+"/v6/latest/",
		time.Second,
		0,
		httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithUpstream("er-api")),
	)

	rate, err := client.Rate(context.Background(), "usd", "thb")
	rq.NoError(err)

	rq.Equal("USD", rate.Base)
	rq.Equal("THB", rate.Quote)
	rq.Equal(32.69, rate.Rate)
	rq.Equal(time.Unix(1760659351, 0).UTC(), rate.UpdatedAt)
	rq.Equal("USD/THB", rate.Pair())
	rq.EqualValues(1, hits.Load())

	_, err = client.Rate(context.Background(), "USD", "XXX")
	rq.ErrorIs(err, exchangerate.ErrUnknownCurrency)
}

func TestClientRetriesServerErrors(t *testing.T) {
	rq := require.New(t)

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(latestUSD)) //nolint:errcheck
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, time.Second, 2, nil)

	rate, err := client.Rate(context.Background(), "USD", "EUR")
	rq.NoError(err)
	rq.Equal(0.86, rate.Rate)
	rq.EqualValues(2, hits.Load())
}

func TestClientDoesNotRetryPermanentErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		status  int
		body    string
		unknown bool
	}{
		{name: "Not found", status: http.StatusNotFound, body: `{}`},
		{name: "Unsupported code", status: http.StatusOK, body: `{"result":"error","error-type":"unsupported-code"}`, unknown: true},
		{name: "Broken JSON", status: http.StatusOK, body: `{"result":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var hits atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				hits.Add(1)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body)) //nolint:errcheck
			}))
			defer srv.Close()

			client := exchangerate.NewClient(srv.URL, time.Second, 3, nil)

			_, err := client.Rate(context.Background(), "ABC", "THB")
			rq.Error(err)
			rq.EqualValues(1, hits.Load())

			if tc.unknown {
				rq.ErrorIs(err, exchangerate.ErrUnknownCurrency)
			}
		})
	}
}
