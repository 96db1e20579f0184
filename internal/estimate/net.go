package estimate

import (
	"math"

	"appraiser/internal/house"

	"gonum.org/v1/gonum/floats"
)

const (
	netHidden2Width = 5
	netScale        = 50000.0
	netOffset       = 150000.0
)

// netInputs normalizes the features into the seven network inputs.
func netInputs(f house.Features) []float64 {
	return []float64{
		f.Sqft / 1000,
		float64(f.Bedrooms) / 5,
		f.Bathrooms / 4,
		float64(f.Age) / 50,
		float64(f.GarageSize) / 3,
		f.LotSize,
		f.Location.Indicator(),
	}
}

// Net passes the inputs through two tanh layers; only the first five units
// of the first layer feed the second one.
func Net(f house.Features) Prediction {
	inputs := netInputs(f)

	hidden1 := make([]float64, len(inputs))
	for i, x := range inputs {
		hidden1[i] = math.Tanh(x*2.5 + 0.1)
	}

	hidden2 := make([]float64, netHidden2Width)
	for i, h := range hidden1[:netHidden2Width] {
		hidden2[i] = math.Tanh(h*1.8 + 0.2)
	}

	return newPrediction(KindNet, floats.Sum(hidden2)*netScale+netOffset)
}
