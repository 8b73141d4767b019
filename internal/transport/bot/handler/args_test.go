package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/domain/service/calculation"
)

func TestParseCalcArgs(t *testing.T) {
	commission := 7.5

	testCases := []struct {
		name    string
		text    string
		want    calculation.Request
		wantErr string
	}{
		{
			name: "Cost only",
			text: "/calc 50000",
			want: calculation.Request{Cost: 50000},
		},
		{
			name: "All arguments",
			text: "/calc 1200,50 7.5 3 express international",
			want: calculation.Request{
				Cost:                1200.5,
				CommissionPercent:   &commission,
				ShippingWeight:      3,
				ShippingMethod:      "express",
				ShippingDestination: "international",
			},
		},
		{
			name:    "No arguments",
			text:    "/calc",
			wantErr: "usage",
		},
		{
			name:    "Too many arguments",
			text:    "/calc 1 2 3 express domestic extra",
			wantErr: "usage",
		},
		{
			name:    "Bad cost",
			text:    "/calc много",
			wantErr: `cost: "много" is not a number`,
		},
		{
			name:    "Bad weight",
			text:    "/calc 100 5 heavy",
			wantErr: `weight: "heavy" is not a number`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := parseCalcArgs(tc.text)
			if tc.wantErr != "" {
				rq.EqualError(err, tc.wantErr)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestParseMinPriceArgs(t *testing.T) {
	rq := require.New(t)

	costs, margin, err := parseMinPriceArgs("/minprice 80 20")
	rq.NoError(err)
	rq.Equal(80.0, costs)
	rq.Equal(20.0, margin)

	_, _, err = parseMinPriceArgs("/minprice 80")
	rq.ErrorIs(err, errUsage)

	_, _, err = parseMinPriceArgs("/minprice 80 x")
	rq.EqualError(err, `margin: "x" is not a number`)
}
