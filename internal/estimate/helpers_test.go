package estimate

import "appraiser/internal/house"

// constRandom always returns the same value.
type constRandom float64

func (c constRandom) Float64() float64 {
	return float64(c)
}

// sampleHouse is the record used by the worked examples.
func sampleHouse() house.Features {
	return house.Features{
		Sqft:       2000,
		Bedrooms:   3,
		Bathrooms:  2,
		Age:        10,
		Location:   house.Suburban,
		GarageSize: 2,
		LotSize:    0.25,
	}
}

func degenerateHouses() []house.Features {
	return []house.Features{
		{},
		{Sqft: -10000, Bedrooms: -3, Bathrooms: -2, Age: 500, Location: "nowhere", GarageSize: -1, LotSize: -5},
		{Sqft: 1, Age: 1000, Location: house.Rural},
		{Sqft: 200, Bedrooms: 1, Bathrooms: 1, Age: 0, Location: house.Urban},
	}
}
