package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/domain/value"
)

func TestParseShippingMethod(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		want    value.ShippingMethod
		wantErr bool
	}{
		{name: "Standard", input: "standard", want: value.ShippingStandard},
		{name: "Express mixed case", input: " Express ", want: value.ShippingExpress},
		{name: "Empty defaults to standard", input: "", want: value.ShippingStandard},
		{name: "Unknown", input: "overnight", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := value.ParseShippingMethod(tc.input)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestParseShippingDestination(t *testing.T) {
	rq := require.New(t)

	got, err := value.ParseShippingDestination("INTERNATIONAL")
	rq.NoError(err)
	rq.Equal(value.DestinationInternational, got)

	got, err = value.ParseShippingDestination("")
	rq.NoError(err)
	rq.Equal(value.DestinationDomestic, got)

	_, err = value.ParseShippingDestination("moon")
	rq.ErrorContains(err, `unknown shipping destination "moon"`)
}

func TestCalculationID(t *testing.T) {
	rq := require.New(t)

	id := value.NewCalculationID()

	parsed, err := value.ParseCalculationID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)
	rq.False(id.CreatedAt().IsZero())

	_, err = value.ParseCalculationID("not-an-id")
	rq.Error(err)
}
