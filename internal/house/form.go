package house

import (
	"math"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Form field names, shared with the JSON representation of Features.
const (
	FieldSqft       = "sqft"
	FieldBedrooms   = "bedrooms"
	FieldBathrooms  = "bathrooms"
	FieldAge        = "age"
	FieldLocation   = "location"
	FieldGarageSize = "garageSize"
	FieldLotSize    = "lotSize"
)

// ParseForm builds Features from text values such as a query string.
// Numbers that fail to parse become 0; missing fields are 0 as well.
// The location is normalized but never rejected.
func ParseForm(values url.Values) Features {
	return Features{
		Sqft:       toFloat(values.Get(FieldSqft)),
		Bedrooms:   toInt(values.Get(FieldBedrooms)),
		Bathrooms:  toFloat(values.Get(FieldBathrooms)),
		Age:        toInt(values.Get(FieldAge)),
		Location:   NormalizeLocation(values.Get(FieldLocation)),
		GarageSize: toInt(values.Get(FieldGarageSize)),
		LotSize:    toFloat(values.Get(FieldLotSize)),
	}
}

// toInt reads raw as a decimal number and truncates it, so "010" is 10 and
// "2.5" is 2. Values beyond the int range become 0.
func toInt(raw string) int {
	v := toFloat(raw)
	if v >= math.MaxInt || v <= math.MinInt {
		return 0
	}
	return int(v)
}

// toFloat reads raw as a decimal number. NaN and infinities become 0.
func toFloat(raw string) float64 {
	v, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
