package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/domain"
	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/httpx/reply"
	"ebay_pricer/pkg/rest"
)

func TestError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       rest.ErrorCode
		message    string
	}{
		{
			name:       "Invalid input",
			err:        fmt.Errorf("solver.Solve: %w", domain.InvalidArgument(errcodes.InvalidInput, "cost must be positive")),
			statusCode: http.StatusBadRequest,
			code:       rest.ErrorCode(errcodes.InvalidInput),
			message:    "cost must be positive",
		},
		{
			name:       "Unsolvable",
			err:        domain.Unprocessable(errcodes.Unsolvable, "fees sum to 101.30%% of the price"),
			statusCode: http.StatusUnprocessableEntity,
			code:       rest.ErrorCode(errcodes.Unsolvable),
		},
		{
			name:       "Not found",
			err:        domain.NewError(domain.KindNotFound, errcodes.CalculationNotFound, "calculation not found"),
			statusCode: http.StatusNotFound,
			code:       rest.ErrorCode(errcodes.CalculationNotFound),
		},
		{
			name:       "Unavailable",
			err:        domain.NewError(domain.KindUnavailable, errcodes.ExchangeRateUnavailable, "exchange rate is unavailable"),
			statusCode: http.StatusServiceUnavailable,
			code:       rest.ErrorCode(errcodes.ExchangeRateUnavailable),
		},
		{
			name:       "Plain error hides details",
			err:        errors.New("pq: connection refused"),
			statusCode: http.StatusInternalServerError,
			code:       rest.ErrorCode(errcodes.InternalServerError),
			message:    "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ctx := contextx.WithTraceID(context.Background(), "trace-42")
			rec := httptest.NewRecorder()

			reply.Error(ctx, rec, tc.err)

			rq.Equal(tc.statusCode, rec.Code)

			var resp rest.Error
			rq.NoError(jsoniter.Unmarshal(rec.Body.Bytes(), &resp))
			rq.Equal(tc.code, resp.Code)
			rq.Equal("trace-42", resp.SupportID)

			if tc.message != "" {
				rq.Equal(tc.message, resp.Message)
			}
		})
	}
}

func TestErrorWithoutTraceID(t *testing.T) {
	rq := require.New(t)

	rec := httptest.NewRecorder()
	reply.Error(context.Background(), rec, errors.New("boom"))

	var resp rest.Error
	rq.NoError(jsoniter.Unmarshal(rec.Body.Bytes(), &resp))
	rq.Equal("unsupported", resp.SupportID)
}
