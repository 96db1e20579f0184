package estimate

import "appraiser/internal/house"

// forestTrees is the number of jittered trials averaged by Forest.
const forestTrees = 100

// coefficientRange is a uniform interval [low, low+width).
type coefficientRange struct {
	low   float64
	width float64
}

func (cr coefficientRange) draw(rnd Random) float64 {
	return cr.low + rnd.Float64()*cr.width
}

// Per-trial ranges. The age range is negative: [-850, -750].
var (
	forestJitter = coefficientRange{low: 0.9, width: 0.2}
	forestSqft   = coefficientRange{low: 115, width: 10}
	forestBed    = coefficientRange{low: 14000, width: 2000}
	forestBath   = coefficientRange{low: 11000, width: 2000}
	forestAge    = coefficientRange{low: -750, width: -100}
	forestGarage = coefficientRange{low: 7500, width: 1000}
	forestLot    = coefficientRange{low: 24000, width: 2000}
)

const forestBase = 95000.0

// Forest averages forestTrees trials. Every trial draws a common jitter and
// its own coefficients from rnd, so repeated calls differ unless rnd is
// seeded identically.
func Forest(f house.Features, rnd Random) Prediction {
	multiplier := f.Location.Multiplier()
	total := 0.0

	for range forestTrees {
		jitter := forestJitter.draw(rnd)
		base := forestBase * jitter
		sqft := f.Sqft * forestSqft.draw(rnd) * jitter
		bed := float64(f.Bedrooms) * forestBed.draw(rnd) * jitter
		bath := f.Bathrooms * forestBath.draw(rnd) * jitter
		age := float64(f.Age) * forestAge.draw(rnd) * jitter
		garage := float64(f.GarageSize) * forestGarage.draw(rnd) * jitter
		lot := f.LotSize * forestLot.draw(rnd) * jitter

		total += (base + sqft + bed + bath + age + garage + lot) * multiplier
	}

	return newPrediction(KindForest, total/forestTrees)
}
