// calc считает цену листинга один раз и печатает результат в JSON.
//
//	go run ./cmd/calc <cost> <exchangeRate> [commission]
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/solver"
	"ebay_pricer/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultCommission = 5

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	in, err := parseArgs(args)
	if err != nil {
		return err
	}

	result, err := solver.Solve(in)
	if err != nil {
		if msg := domain.Description(err); msg != "" {
			return errors.New(msg)
		}

		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func parseArgs(args []string) (entity.CalculationInput, error) {
	if len(args) < 2 || len(args) > 3 { //nolint:mnd
		return entity.CalculationInput{}, errors.New("usage: calc <cost> <exchangeRate> [commission]")
	}

	values := make([]float64, len(args))

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return entity.CalculationInput{}, fmt.Errorf("argument %d: %q is not a number", i+1, arg)
		}

		values[i] = v
	}

	commission := float64(defaultCommission)
	if len(values) == 3 { //nolint:mnd
		commission = values[2]
	}

	return entity.CalculationInput{
		Cost:                values[0],
		ExchangeRate:        values[1],
		CommissionPercent:   commission,
		ShippingMethod:      value.ShippingStandard,
		ShippingDestination: value.DestinationDomestic,
		Fees:                entity.DefaultFeeSchedule(),
	}, nil
}
