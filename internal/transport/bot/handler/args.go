package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ebay_pricer/internal/domain/service/calculation"
)

var errUsage = errors.New("usage")

// parseCalcArgs разбирает "/calc <cost> [commission] [weight] [method] [destination]".
// Курс не передаётся, его подставляет сервис.
func parseCalcArgs(text string) (calculation.Request, error) {
	args := commandArgs(text)
	if len(args) == 0 || len(args) > 5 { //nolint:mnd
		return calculation.Request{}, errUsage
	}

	var (
		req calculation.Request
		err error
	)

	if req.Cost, err = parseNumber("cost", args[0]); err != nil {
		return calculation.Request{}, err
	}

	if len(args) > 1 {
		commission, err := parseNumber("commission", args[1])
		if err != nil {
			return calculation.Request{}, err
		}

		req.CommissionPercent = &commission
	}

	if len(args) > 2 { //nolint:mnd
		if req.ShippingWeight, err = parseNumber("weight", args[2]); err != nil {
			return calculation.Request{}, err
		}
	}

	if len(args) > 3 { //nolint:mnd
		req.ShippingMethod = args[3]
	}

	if len(args) > 4 { //nolint:mnd
		req.ShippingDestination = args[4]
	}

	return req, nil
}

// parseMinPriceArgs разбирает "/minprice <costs> <margin>".
func parseMinPriceArgs(text string) (costs, margin float64, err error) {
	args := commandArgs(text)
	if len(args) != 2 { //nolint:mnd
		return 0, 0, errUsage
	}

	if costs, err = parseNumber("costs", args[0]); err != nil {
		return 0, 0, err
	}

	if margin, err = parseNumber("margin", args[1]); err != nil {
		return 0, 0, err
	}

	return costs, margin, nil
}

func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	return fields[1:]
}

// parseNumber принимает и десятичную запятую.
func parseNumber(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, raw)
	}

	return v, nil
}
