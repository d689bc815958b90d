// Package scoring holds the pure math behind stage and final scores. Nothing
// here touches storage: every function is a deterministic mapping from its
// inputs, which is what makes metric recomputation idempotent.
package scoring

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Weights configures the contribution of each stage to the final total.
// They are a grading-policy input, not something the engine decides.
type Weights struct {
	Question float64
	Tag      float64
	Vote     float64
}

func DefaultWeights() Weights {
	return Weights{Question: 0.3, Tag: 0.3, Vote: 0.4}
}

// QuestionStage grants proportional credit for submitted questions, capped at
// the panel's expected count. Range [0, 100].
func QuestionStage(submitted, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	if submitted > expected {
		submitted = expected
	}
	if submitted < 0 {
		submitted = 0
	}
	return 100 * float64(submitted) / float64(expected)
}

// TagStage grants coverage credit: distinct questions reacted to over the size
// of the pool presented to the user. Range [0, 100].
func TagStage(reacted, pool int) float64 {
	if pool <= 0 {
		return 0
	}
	if reacted > pool {
		reacted = pool
	}
	if reacted < 0 {
		reacted = 0
	}
	return 100 * float64(reacted) / float64(pool)
}

// WeightedTotal combines the three stage scores using the configured weights.
func WeightedTotal(w Weights, question, tag, vote float64) float64 {
	return w.Question*question + w.Tag*tag + w.Vote*vote
}

// RanksFromOrder maps each id in a submitted permutation to its 1-based rank.
func RanksFromOrder(order []uuid.UUID) map[uuid.UUID]float64 {
	ranks := make(map[uuid.UUID]float64, len(order))
	for i, id := range order {
		ranks[id] = float64(i + 1)
	}
	return ranks
}

// RanksFromScores ranks ids by descending score, assigning tied ids their
// average rank so the reference ranking stays deterministic and unbiased.
func RanksFromScores(ids []uuid.UUID, scores map[uuid.UUID]float64) map[uuid.UUID]float64 {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		si, sj := scores[sorted[i]], scores[sorted[j]]
		if si != sj {
			return si > sj
		}
		// Stable tie order before averaging.
		return sorted[i].String() < sorted[j].String()
	})

	ranks := make(map[uuid.UUID]float64, len(sorted))
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && scores[sorted[j]] == scores[sorted[i]] {
			j++
		}
		// Positions i..j-1 share the same score; give them the average rank.
		avg := float64(i+j+1) / 2 // ((i+1)+(j))/2
		for k := i; k < j; k++ {
			ranks[sorted[k]] = avg
		}
		i = j
	}
	return ranks
}

// Spearman computes the rank correlation coefficient between two rank
// assignments over the same id set. Implemented as Pearson on ranks, which
// remains correct in the presence of ties. Returns 0 for degenerate inputs.
func Spearman(a, b map[uuid.UUID]float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}

	var sumA, sumB float64
	for id, ra := range a {
		sumA += ra
		sumB += b[id]
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var cov, varA, varB float64
	for id, ra := range a {
		da := ra - meanA
		db := b[id] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}

// Kendall computes the tau-a rank correlation between two rank assignments
// over the same id set. Quadratic, fine for panel-sized inputs.
func Kendall(a, b map[uuid.UUID]float64) float64 {
	ids := make([]uuid.UUID, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	n := len(ids)
	if n < 2 || n != len(b) {
		return 0
	}

	var concordant, discordant float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			da := a[ids[i]] - a[ids[j]]
			db := b[ids[i]] - b[ids[j]]
			prod := da * db
			if prod > 0 {
				concordant++
			} else if prod < 0 {
				discordant++
			}
		}
	}
	pairs := float64(n*(n-1)) / 2
	return (concordant - discordant) / pairs
}

// CorrelationToScore maps a correlation in [-1, 1] onto [0, 100].
func CorrelationToScore(rho float64) float64 {
	if rho < -1 {
		rho = -1
	}
	if rho > 1 {
		rho = 1
	}
	return 100 * (1 + rho) / 2
}

// PositionWeight is the vote bonus contributed by ranking an item at the given
// 0-based position in an order of the given length: top rank earns the most.
func PositionWeight(position, total int) float64 {
	if position < 0 || position >= total {
		return 0
	}
	return float64(total - position)
}

// MeanMinMax summarizes a score distribution. Empty input yields zeros.
func MeanMinMax(values []float64) (mean, min, max float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	min = values[0]
	max = values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return sum / float64(len(values)), min, max
}
