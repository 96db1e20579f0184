package estimate

import (
	"appraiser/internal/house"

	"gonum.org/v1/gonum/stat"
)

// Combine aggregates base predictions: the price is their accuracy-weighted
// mean, the confidence their plain mean. Accuracy is the fixed ensemble value.
// The price is floored at MinPrice like the base models so rounding in the
// mean cannot drop it below. An empty input yields a floor-priced result with
// zero confidence.
func Combine(parts []Prediction) Prediction {
	result := Prediction{
		Model:    profiles[KindEnsemble].label,
		Kind:     KindEnsemble,
		Price:    MinPrice,
		Accuracy: profiles[KindEnsemble].accuracy,
	}
	if len(parts) == 0 {
		return result
	}

	prices := make([]float64, len(parts))
	weights := make([]float64, len(parts))
	confidences := make([]float64, len(parts))
	for i, p := range parts {
		prices[i] = p.Price
		weights[i] = p.Accuracy
		confidences[i] = p.Confidence
	}

	result.Price = floorPrice(stat.Mean(prices, weights))
	result.Confidence = stat.Mean(confidences, nil)
	return result
}

// Ensemble runs each base model once and combines them.
// The forest draw here is independent of any other forest call.
func Ensemble(f house.Features, rnd Random) Prediction {
	return Combine([]Prediction{
		Linear(f),
		Forest(f, rnd),
		Boost(f),
		Net(f),
	})
}
