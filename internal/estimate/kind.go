package estimate

import "fmt"

// Kind enumerates the models. The set is closed.
type Kind int

const (
	KindEnsemble Kind = iota
	KindForest
	KindNet
	KindBoost
	KindLinear
)

// profile holds the fixed metadata of a model.
type profile struct {
	label      string
	slug       string
	confidence float64
	accuracy   float64
}

// Ensemble confidence is computed from its parts, so it is left at zero here.
var profiles = map[Kind]profile{
	KindEnsemble: {label: "Ensemble", slug: "ensemble", accuracy: 0.93},
	KindForest:   {label: "Random Forest", slug: "forest", confidence: 0.92, accuracy: 0.89},
	KindNet:      {label: "Neural Network", slug: "net", confidence: 0.90, accuracy: 0.87},
	KindBoost:    {label: "Gradient Boosting", slug: "boost", confidence: 0.88, accuracy: 0.86},
	KindLinear:   {label: "Linear Regression", slug: "linear", confidence: 0.85, accuracy: 0.82},
}

// Kinds returns all model kinds in the order PredictAll collects them.
func Kinds() []Kind {
	return []Kind{KindEnsemble, KindForest, KindNet, KindBoost, KindLinear}
}

// String returns the display label.
func (k Kind) String() string {
	if p, ok := profiles[k]; ok {
		return p.label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slug returns the short identifier used in URLs and metrics labels.
func (k Kind) Slug() string {
	if p, ok := profiles[k]; ok {
		return p.slug
	}
	return "unknown"
}

// MarshalText encodes the kind as its slug.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := profiles[k]; !ok {
		return nil, fmt.Errorf("unknown model kind %d", int(k))
	}
	return []byte(k.Slug()), nil
}

// UnmarshalText decodes a slug produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnknownKindError is returned by ParseKind for slugs outside of the model set.
type UnknownKindError struct {
	slug string
}

// Error returns the description of the error.
func (e *UnknownKindError) Error() string {
	return "unknown model: " + e.slug
}

// ParseKind resolves a slug such as "forest" to its Kind.
func ParseKind(slug string) (Kind, error) {
	for k, p := range profiles {
		if p.slug == slug {
			return k, nil
		}
	}
	return 0, &UnknownKindError{slug: slug}
}

// newPrediction builds a base model result with its fixed metadata,
// flooring the price at MinPrice.
func newPrediction(kind Kind, price float64) Prediction {
	p := profiles[kind]
	return Prediction{
		Model:      p.label,
		Kind:       kind,
		Price:      floorPrice(price),
		Confidence: p.confidence,
		Accuracy:   p.accuracy,
	}
}

// floorPrice clamps price to MinPrice. NaN is clamped as well.
func floorPrice(price float64) float64 {
	if !(price >= MinPrice) {
		return MinPrice
	}
	return price
}
