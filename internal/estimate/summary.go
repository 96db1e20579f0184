package estimate

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of predictions for display.
type Summary struct {
	// Best: prediction with the highest accuracy; the first one wins ties.
	Best Prediction `json:"best"`
	// AveragePrice: unweighted mean of all prices.
	AveragePrice float64 `json:"averagePrice"`
	// MinPrice, MaxPrice: price range across models.
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	// Spread: MaxPrice minus MinPrice.
	Spread float64 `json:"spread"`
}

// Summarize computes the Summary of preds. It works on any order of input.
// An empty slice returns the zero Summary.
func Summarize(preds []Prediction) Summary {
	if len(preds) == 0 {
		return Summary{}
	}

	best := preds[0]
	prices := make([]float64, len(preds))
	for i, p := range preds {
		prices[i] = p.Price
		if p.Accuracy > best.Accuracy {
			best = p
		}
	}

	low, high := floats.Min(prices), floats.Max(prices)
	return Summary{
		Best:         best,
		AveragePrice: stat.Mean(prices, nil),
		MinPrice:     low,
		MaxPrice:     high,
		Spread:       high - low,
	}
}
