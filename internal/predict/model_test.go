package predict

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"bostonhouse/config"
	"bostonhouse/internal/models"
)

func newTestModel(seed int64) *Model {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewModel(rand.New(rand.NewSource(seed)), logger)
}

func TestPredictPriceIsDeterministic(t *testing.T) {
	m := newTestModel(1)
	features := DefaultFeatures()

	first := m.Predict(features)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Price, m.Predict(features).Price,
			"price must be identical across repeated calls for fixed features")
	}
}

func TestPredictFloor(t *testing.T) {
	m := newTestModel(1)

	// The default form vector evaluates below the floor and must be clamped.
	result := m.Predict(DefaultFeatures())
	assert.Equal(t, 50000.0, result.Price)

	// An all-zero vector yields the bare base price, also below the floor.
	result = m.Predict(models.Features{})
	assert.Equal(t, 50000.0, result.Price)
}

func TestPredictAboveFloor(t *testing.T) {
	m := newTestModel(1)

	// 24.0 + 2.7*1 + 3.8*10 = 64.7 thousand.
	result := m.Predict(models.Features{CHAS: 1, RM: 10})
	assert.InDelta(t, 64700.0, result.Price, 1e-6)
}

func TestConfidenceRange(t *testing.T) {
	m := newTestModel(42)
	features := DefaultFeatures()

	for i := 0; i < 200; i++ {
		result := m.Predict(features)
		assert.GreaterOrEqual(t, result.Confidence, 0.7)
		assert.Less(t, result.Confidence, 1.0)
	}
}

func TestConfidenceIsPinnedBySource(t *testing.T) {
	a := newTestModel(7)
	b := newTestModel(7)

	// Same seed, same draw sequence.
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Predict(DefaultFeatures()).Confidence, b.Predict(DefaultFeatures()).Confidence)
	}
}

func TestWeightsCoverFeatureRegistry(t *testing.T) {
	assert.Equal(t, config.FeatureCodes(), WeightCodes(),
		"model weights and the feature registry must stay aligned")
}
