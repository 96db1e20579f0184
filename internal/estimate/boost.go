package estimate

import "appraiser/internal/house"

const (
	boostInitial    = 80000.0
	boostRate       = 0.1
	boostIterations = 50

	boostSqft   = 110.0
	boostBed    = 13000.0
	boostBath   = 10500.0
	boostAge    = -700.0
	boostGarage = 7000.0
	boostLot    = 23000.0
)

// Boost refines an initial estimate in boostIterations steps. Each step adds
// the learning-rate scaled residual, damped linearly from 1 towards 0.
// The location multiplier is applied once at the end.
func Boost(f house.Features) Prediction {
	prediction := boostInitial

	for i := range boostIterations {
		residual := f.Sqft*boostSqft*boostRate +
			float64(f.Bedrooms)*boostBed*boostRate +
			f.Bathrooms*boostBath*boostRate +
			float64(f.Age)*boostAge*boostRate +
			float64(f.GarageSize)*boostGarage*boostRate +
			f.LotSize*boostLot*boostRate

		prediction += residual * (1 - float64(i)/boostIterations)
	}

	return newPrediction(KindBoost, prediction*f.Location.Multiplier())
}
