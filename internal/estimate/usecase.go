// Package estimate turns a house.Features record into price estimates.
//
// Four base models (linear, forest, boost, net) are fixed analytic formulas;
// the ensemble combines them weighted by their accuracy. Confidence and
// accuracy are per-model constants, not measured values.
package estimate

import "appraiser/internal/house"

// MinPrice is the floor applied to every base model result.
const MinPrice = 50000.0

// Prediction is the outcome of one model run.
type Prediction struct {
	// Model: display label of the producing model.
	Model string `json:"model"`
	// Kind: model identifier.
	Kind Kind `json:"kind"`
	// Price: estimated market price.
	Price float64 `json:"price"`
	// Confidence: assumed reliability of the model, in (0, 1].
	Confidence float64 `json:"confidence"`
	// Accuracy: ranking and weighting key, in (0, 1].
	Accuracy float64 `json:"accuracy"`
}

// Random is the source of uniform values in [0, 1) consumed by the forest model.
type Random interface {
	Float64() float64
}

// Estimator is the contract the transport layer depends on.
type Estimator interface {
	PredictAll(f house.Features) []Prediction
	Best(f house.Features) Prediction
	Score(kind Kind, f house.Features) Prediction
}
