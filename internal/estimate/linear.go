package estimate

import "appraiser/internal/house"

// Linear coefficients.
const (
	linearBase   = 100000.0
	linearSqft   = 120.0
	linearBed    = 15000.0
	linearBath   = 12000.0
	linearAge    = -800.0
	linearGarage = 8000.0
	linearLot    = 25000.0
)

// Linear is a fixed weighted sum of the features scaled by the location
// multiplier. It is pure.
func Linear(f house.Features) Prediction {
	price := (linearBase +
		f.Sqft*linearSqft +
		float64(f.Bedrooms)*linearBed +
		f.Bathrooms*linearBath +
		float64(f.Age)*linearAge +
		float64(f.GarageSize)*linearGarage +
		f.LotSize*linearLot) * f.Location.Multiplier()

	return newPrediction(KindLinear, price)
}
