package predict

import (
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"bostonhouse/internal/models"
)

// basePrice is the Boston housing dataset mean, in thousands of dollars.
const basePrice = 24.0

// floorPrice is the lowest price the model ever reports, in dollars.
const floorPrice = 50000.0

// weight binds a covariate code to its fixed coefficient. The slice order
// fixes the summation order, so the price component is bit-identical across
// repeated calls for the same features.
type weight struct {
	Code  string
	Value float64
}

var weights = []weight{
	{"CRIM", -0.1},
	{"ZN", 0.05},
	{"INDUS", -0.02},
	{"CHAS", 2.7},
	{"NOX", -17.8},
	{"RM", 3.8},
	{"AGE", -0.01},
	{"DIS", 1.3},
	{"RAD", 0.3},
	{"TAX", -0.012},
	{"PTRATIO", -0.95},
	{"B", 0.009},
	{"LSTAT", -0.53},
}

// WeightCodes returns the covariate codes in summation order.
func WeightCodes() []string {
	codes := make([]string, len(weights))
	for i, w := range weights {
		codes[i] = w.Code
	}
	return codes
}

// DefaultFeatures returns the feature vector the prediction form starts
// with (the first record of the Boston housing dataset).
func DefaultFeatures() models.Features {
	return models.Features{
		CRIM: 0.00632, ZN: 18.0, INDUS: 2.31, CHAS: 0, NOX: 0.538,
		RM: 6.575, AGE: 65.2, DIS: 4.09, RAD: 1, TAX: 296,
		PTRATIO: 15.3, B: 396.9, LSTAT: 4.98,
	}
}

// Result is one model evaluation.
type Result struct {
	Price      float64 `json:"price"`
	Confidence float64 `json:"confidence"`
}

// Model evaluates the linear price estimate. The price component is a
// deterministic weight combination; the confidence score is sampled from
// the injected randomness source on every call and is not reproducible.
type Model struct {
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewModel creates a model. A nil rng gets a time-seeded source; tests
// inject a fixed one to pin the confidence score.
func NewModel(rng *rand.Rand, logger *logrus.Logger) *Model {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Model{rng: rng, logger: logger}
}

// Predict returns the estimated price in dollars, floored at 50,000, and a
// confidence score drawn uniformly from [0.70, 1.00).
func (m *Model) Predict(f models.Features) Result {
	adjusted := basePrice
	for _, w := range weights {
		adjusted += f.Value(w.Code) * w.Value
	}

	price := adjusted * 1000
	if price < floorPrice {
		price = floorPrice
	}
	confidence := 0.7 + m.rng.Float64()*0.3

	m.logger.WithFields(logrus.Fields{
		"price":      price,
		"confidence": confidence,
	}).Debug("Evaluated price model")

	return Result{Price: price, Confidence: confidence}
}
