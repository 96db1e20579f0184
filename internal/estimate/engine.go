package estimate

import (
	"cmp"
	"log/slog"
	"slices"

	"appraiser/internal/house"
)

// Engine runs the models against one random source.
// It keeps no per-call state and is safe for concurrent use when the random
// source is (NewRandom's is).
type Engine struct {
	rnd    Random
	logger *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing of model results.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine drawing forest randomness from rnd.
// A nil rnd is replaced by an entropy-seeded source.
func NewEngine(rnd Random, opts ...Option) *Engine {
	if rnd == nil {
		rnd = NewRandom(0)
	}
	engine := &Engine{
		rnd:    rnd,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Score runs a single model.
func (e *Engine) Score(kind Kind, f house.Features) Prediction {
	var p Prediction
	switch kind {
	case KindEnsemble:
		p = Ensemble(f, e.rnd)
	case KindForest:
		p = Forest(f, e.rnd)
	case KindNet:
		p = Net(f)
	case KindBoost:
		p = Boost(f)
	case KindLinear:
		p = Linear(f)
	default:
		e.logger.Warn("unknown model kind, falling back to linear", "kind", int(kind))
		p = Linear(f)
	}
	e.logger.Debug("model estimate", "model", p.Model, "price", p.Price)
	return p
}

// PredictAll runs the ensemble and then every base model once more on its
// own, returning five results ordered by accuracy, highest first. Equal
// accuracies keep collection order.
//
// The standalone forest result and the forest folded into the ensemble come
// from separate draws, so the ensemble price is not the weighted mean of the
// returned base prices.
func (e *Engine) PredictAll(f house.Features) []Prediction {
	kinds := Kinds()
	results := make([]Prediction, 0, len(kinds))
	for _, kind := range kinds {
		results = append(results, e.Score(kind, f))
	}

	slices.SortStableFunc(results, func(a, b Prediction) int {
		return cmp.Compare(b.Accuracy, a.Accuracy)
	})
	return results
}

// Best returns the ensemble result without running the standalone models.
func (e *Engine) Best(f house.Features) Prediction {
	return e.Score(KindEnsemble, f)
}
