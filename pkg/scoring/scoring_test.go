package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQuestionStage(t *testing.T) {
	assert.Equal(t, 0.0, QuestionStage(3, 0))
	assert.Equal(t, 0.0, QuestionStage(0, 5))
	assert.Equal(t, 60.0, QuestionStage(3, 5))
	assert.Equal(t, 100.0, QuestionStage(5, 5))
	assert.Equal(t, 100.0, QuestionStage(9, 5), "submissions above the expectation do not overshoot")
}

func TestTagStage(t *testing.T) {
	assert.Equal(t, 0.0, TagStage(2, 0))
	assert.Equal(t, 50.0, TagStage(5, 10))
	assert.Equal(t, 100.0, TagStage(12, 10))
}

func TestWeightedTotal(t *testing.T) {
	w := Weights{Question: 0.3, Tag: 0.3, Vote: 0.4}
	assert.InDelta(t, 100.0, WeightedTotal(w, 100, 100, 100), 1e-9)
	assert.InDelta(t, 58.0, WeightedTotal(w, 60, 40, 70), 1e-9)
}

func TestRanksFromOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ranks := RanksFromOrder([]uuid.UUID{b, a, c})
	assert.Equal(t, 1.0, ranks[b])
	assert.Equal(t, 2.0, ranks[a])
	assert.Equal(t, 3.0, ranks[c])
}

func TestRanksFromScoresAveragesTies(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	scores := map[uuid.UUID]float64{a: 10, b: 7, c: 7, d: 1}
	ranks := RanksFromScores([]uuid.UUID{a, b, c, d}, scores)
	assert.Equal(t, 1.0, ranks[a])
	assert.Equal(t, 2.5, ranks[b])
	assert.Equal(t, 2.5, ranks[c])
	assert.Equal(t, 4.0, ranks[d])
}

func TestSpearman(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ids := []uuid.UUID{a, b, c, d}

	same := RanksFromOrder(ids)
	assert.InDelta(t, 1.0, Spearman(same, same), 1e-9)

	reversed := RanksFromOrder([]uuid.UUID{d, c, b, a})
	assert.InDelta(t, -1.0, Spearman(same, reversed), 1e-9)

	assert.Equal(t, 0.0, Spearman(map[uuid.UUID]float64{}, map[uuid.UUID]float64{}))
}

func TestKendall(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ids := []uuid.UUID{a, b, c, d}

	same := RanksFromOrder(ids)
	assert.InDelta(t, 1.0, Kendall(same, same), 1e-9)

	reversed := RanksFromOrder([]uuid.UUID{d, c, b, a})
	assert.InDelta(t, -1.0, Kendall(same, reversed), 1e-9)

	// One adjacent swap in four items flips one of six pairs.
	swapped := RanksFromOrder([]uuid.UUID{a, c, b, d})
	assert.InDelta(t, 4.0/6.0, Kendall(same, swapped), 1e-9)
}

func TestCorrelationToScore(t *testing.T) {
	assert.Equal(t, 100.0, CorrelationToScore(1))
	assert.Equal(t, 50.0, CorrelationToScore(0))
	assert.Equal(t, 0.0, CorrelationToScore(-1))
	assert.Equal(t, 0.0, CorrelationToScore(-3), "out-of-range input is clamped")
}

func TestPositionWeight(t *testing.T) {
	assert.Equal(t, 5.0, PositionWeight(0, 5))
	assert.Equal(t, 1.0, PositionWeight(4, 5))
	assert.Equal(t, 0.0, PositionWeight(5, 5))
	assert.Equal(t, 0.0, PositionWeight(-1, 5))
}

func TestMeanMinMax(t *testing.T) {
	mean, min, max := MeanMinMax([]float64{40, 80, 60})
	assert.InDelta(t, 60.0, mean, 1e-9)
	assert.Equal(t, 40.0, min)
	assert.Equal(t, 80.0, max)

	mean, min, max = MeanMinMax(nil)
	assert.Zero(t, mean)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
