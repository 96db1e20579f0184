package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"appraiser/internal/estimate"
	"appraiser/internal/house"
	"appraiser/internal/insight"
	"appraiser/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds the size of a features request body.
const maxBodyBytes = 1 << 16

// PredictionsResponse is the body returned for a full estimate.
type PredictionsResponse struct {
	// Predictions: five results ordered by accuracy, highest first.
	Predictions []estimate.Prediction `json:"predictions"`
	// Summary: aggregates of Predictions.
	Summary estimate.Summary `json:"summary"`
	// Labels: insight labels of the best prediction.
	Labels []string `json:"labels"`
}

// PredictionResponse is the body returned for a single model estimate.
type PredictionResponse struct {
	Prediction estimate.Prediction `json:"prediction"`
	Labels     []string            `json:"labels"`
}

// ApiV1Router manages routes for API version 1.
type ApiV1Router struct {
	// estimator: engine computing the estimates.
	estimator estimate.Estimator
	// tagger: insight rules; nil disables labels.
	tagger *insight.Tagger
	// metrics: request and estimate metrics; nil disables recording.
	metrics *metrics.Metrics
	// gatherer: source of the metrics endpoint; nil disables the endpoint.
	gatherer prometheus.Gatherer
	// metricsPath: route of the metrics endpoint.
	metricsPath string
}

// Mux returns a configured *http.ServeMux with registered handlers.
// Registers the following routes:
// - POST /api/v1/predictions: all models for a JSON features body
// - GET /api/v1/predictions: all models for features in the query string
// - POST /api/v1/predictions/best: ensemble only
// - POST /api/v1/models/{model}: one model by slug
// - GET /healthz: liveness probe
// - GET <metricsPath>: Prometheus metrics (if enabled)
func (ar *ApiV1Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/predictions", ar.observe("predictions", ar.predictionsHandler))
	mux.HandleFunc("GET /api/v1/predictions", ar.observe("predictions", ar.predictionsQueryHandler))
	mux.HandleFunc("POST /api/v1/predictions/best", ar.observe("best", ar.bestHandler))
	mux.HandleFunc("POST /api/v1/models/{model}", ar.observe("model", ar.modelHandler))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if ar.gatherer != nil && len(ar.metricsPath) != 0 {
		mux.Handle("GET "+ar.metricsPath, promhttp.HandlerFor(ar.gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}

// predictionsHandler runs every model for the features in the JSON body.
func (ar *ApiV1Router) predictionsHandler(w http.ResponseWriter, r *http.Request) {
	features, ok := readFeatures(w, r)
	if !ok {
		return
	}
	ar.writePredictions(w, features)
}

// predictionsQueryHandler runs every model for features given as query
// parameters. Values that are not numbers count as 0.
func (ar *ApiV1Router) predictionsQueryHandler(w http.ResponseWriter, r *http.Request) {
	features := house.ParseForm(r.URL.Query())
	noteLocation(features)
	ar.writePredictions(w, features)
}

func (ar *ApiV1Router) writePredictions(w http.ResponseWriter, features house.Features) {
	start := time.Now()
	predictions := ar.estimator.PredictAll(features)
	ar.metrics.ObserveEstimates(time.Since(start), predictions...)

	summary := estimate.Summarize(predictions)
	writeJSON(w, PredictionsResponse{
		Predictions: predictions,
		Summary:     summary,
		Labels:      ar.tagger.Labels(features, summary.Best),
	})
}

// bestHandler returns the ensemble estimate only.
func (ar *ApiV1Router) bestHandler(w http.ResponseWriter, r *http.Request) {
	features, ok := readFeatures(w, r)
	if !ok {
		return
	}

	start := time.Now()
	prediction := ar.estimator.Best(features)
	ar.metrics.ObserveEstimates(time.Since(start), prediction)

	writeJSON(w, PredictionResponse{
		Prediction: prediction,
		Labels:     ar.tagger.Labels(features, prediction),
	})
}

// modelHandler runs the model named in the path: /api/v1/models/{model}.
// Unknown models answer 404.
func (ar *ApiV1Router) modelHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := estimate.ParseKind(r.PathValue("model"))
	if err != nil {
		slog.Warn("Unknown model", "model", r.PathValue("model"), "error", err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	features, ok := readFeatures(w, r)
	if !ok {
		return
	}

	start := time.Now()
	prediction := ar.estimator.Score(kind, features)
	ar.metrics.ObserveEstimates(time.Since(start), prediction)

	writeJSON(w, PredictionResponse{
		Prediction: prediction,
		Labels:     ar.tagger.Labels(features, prediction),
	})
}

// readFeatures decodes the JSON body into Features. On failure it answers
// 422 and returns false.
func readFeatures(w http.ResponseWriter, r *http.Request) (house.Features, bool) {
	defer r.Body.Close()

	var features house.Features
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		slog.Warn("Unable to read features request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return features, false
	}

	if err := json.Unmarshal(body, &features); err != nil {
		slog.Warn("Unable to unmarshal features request body", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return features, false
	}

	features.Location = house.NormalizeLocation(string(features.Location))
	noteLocation(features)
	return features, true
}

// noteLocation logs locations priced with the neutral multiplier.
func noteLocation(f house.Features) {
	if !f.Location.Known() {
		slog.Debug("Unknown location, neutral multiplier applied", "location", f.Location)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.code = code
	sr.ResponseWriter.WriteHeader(code)
}

// observe counts requests of route by status code.
func (ar *ApiV1Router) observe(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(recorder, r)
		ar.metrics.ObserveRequest(route, recorder.code)
	}
}

// NewApiV1Router creates a new API v1 router.
// Parameters:
// - estimator: engine computing the estimates
// - tagger: insight rules (can be nil)
// - m: metrics to record into (can be nil)
// - gatherer: registry exposed on metricsPath (nil disables the endpoint)
// - metricsPath: route of the metrics endpoint
func NewApiV1Router(
	estimator estimate.Estimator,
	tagger *insight.Tagger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	metricsPath string,
) *ApiV1Router {
	return &ApiV1Router{
		estimator:   estimator,
		tagger:      tagger,
		metrics:     m,
		gatherer:    gatherer,
		metricsPath: metricsPath,
	}
}
