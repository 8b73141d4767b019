package value

import (
	"fmt"
	"strings"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

func (m ShippingMethod) String() string {
	return string(m)
}

func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch m := ShippingMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case ShippingStandard, ShippingExpress:
		return m, nil
	case "":
		return ShippingStandard, nil
	default:
		return "", fmt.Errorf("unknown shipping method %q", s)
	}
}

type ShippingDestination string

const (
	DestinationDomestic      ShippingDestination = "domestic"
	DestinationInternational ShippingDestination = "international"
)

func (d ShippingDestination) String() string {
	return string(d)
}

func ParseShippingDestination(s string) (ShippingDestination, error) {
	switch d := ShippingDestination(strings.ToLower(strings.TrimSpace(s))); d {
	case DestinationDomestic, DestinationInternational:
		return d, nil
	case "":
		return DestinationDomestic, nil
	default:
		return "", fmt.Errorf("unknown shipping destination %q", s)
	}
}
