package insight

import (
	"appraiser/internal/estimate"
	"appraiser/internal/house"

	"github.com/google/cel-go/cel"
)

// NewEstimateEnv creates the CEL environment rules are compiled against.
// It declares the features of the house and the fields of the estimate.
func NewEstimateEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("price", cel.DoubleType),
		cel.Variable("confidence", cel.DoubleType),
		cel.Variable("accuracy", cel.DoubleType),
		cel.Variable("model", cel.StringType),
		cel.Variable("sqft", cel.DoubleType),
		cel.Variable("bedrooms", cel.IntType),
		cel.Variable("bathrooms", cel.DoubleType),
		cel.Variable("age", cel.IntType),
		cel.Variable("location", cel.StringType),
		cel.Variable("garageSize", cel.IntType),
		cel.Variable("lotSize", cel.DoubleType),
	)
}

// Activation is the variable binding of one evaluation.
type Activation map[string]any

// NewActivation binds a house and one of its estimates to the variables
// declared by NewEstimateEnv.
func NewActivation(f house.Features, p estimate.Prediction) Activation {
	return Activation{
		"price":      p.Price,
		"confidence": p.Confidence,
		"accuracy":   p.Accuracy,
		"model":      p.Kind.Slug(),
		"sqft":       f.Sqft,
		"bedrooms":   int64(f.Bedrooms),
		"bathrooms":  f.Bathrooms,
		"age":        int64(f.Age),
		"location":   string(f.Location),
		"garageSize": int64(f.GarageSize),
		"lotSize":    f.LotSize,
	}
}
