package house

import "strings"

// Location is the neighborhood type of a property.
// Values outside of the known set are accepted and treated as neutral.
type Location string

const (
	Urban    Location = "urban"
	Suburban Location = "suburban"
	Rural    Location = "rural"
)

// Multiplier returns the price scalar of the location.
// Unknown locations get 1.0.
func (l Location) Multiplier() float64 {
	switch l {
	case Urban:
		return 1.3
	case Suburban:
		return 1.0
	case Rural:
		return 0.8
	default:
		return 1.0
	}
}

// Indicator returns the location encoded as a single network input:
// urban 1, suburban 0.5, anything else 0.
func (l Location) Indicator() float64 {
	switch l {
	case Urban:
		return 1
	case Suburban:
		return 0.5
	default:
		return 0
	}
}

// Known reports whether l is one of the named locations.
func (l Location) Known() bool {
	return l == Urban || l == Suburban || l == Rural
}

// NormalizeLocation trims and lower-cases a raw location value.
func NormalizeLocation(raw string) Location {
	return Location(strings.ToLower(strings.TrimSpace(raw)))
}

// Features describes one property. It is passed by value and never mutated
// by the estimators.
type Features struct {
	// Sqft: living area in square feet.
	Sqft float64 `json:"sqft"`
	// Bedrooms: number of bedrooms.
	Bedrooms int `json:"bedrooms"`
	// Bathrooms: number of bathrooms in 0.5 steps.
	Bathrooms float64 `json:"bathrooms"`
	// Age: building age in years.
	Age int `json:"age"`
	// Location: neighborhood type.
	Location Location `json:"location"`
	// GarageSize: garage capacity in cars.
	GarageSize int `json:"garageSize"`
	// LotSize: lot size in acres.
	LotSize float64 `json:"lotSize"`
}

// Default returns the record the input form starts with.
func Default() Features {
	return Features{
		Sqft:       2000,
		Bedrooms:   3,
		Bathrooms:  2,
		Age:        10,
		Location:   Suburban,
		GarageSize: 2,
		LotSize:    0.25,
	}
}
