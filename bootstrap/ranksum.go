package bootstrap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// mannWhitneyU performs a one-sided Mann-Whitney U test of x against y
// with the alternative "x is stochastically greater than y".
//
// The pooled sample is midranked (ties share the average of the ranks
// they span); the statistic is U₁ = R₁ − n₁(n₁+1)/2 where R₁ is the rank
// sum of x. The p-value uses the normal approximation with tie-corrected
// variance and a 0.5 continuity correction.
//
// Degenerate inputs — an empty sample, or a pooled sample whose values
// are all tied (zero variance) — return ErrDegenerate.
// Complexity: O((n₁+n₂) log(n₁+n₂)).
func mannWhitneyU(x, y []float64) (u, p float64, err error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, 0, ErrDegenerate
	}
	n1, n2 := float64(len(x)), float64(len(y))
	n := n1 + n2

	type obs struct {
		v     float64
		fromX bool
	}
	pooled := make([]obs, 0, len(x)+len(y))
	for _, v := range x {
		pooled = append(pooled, obs{v: v, fromX: true})
	}
	for _, v := range y {
		pooled = append(pooled, obs{v: v})
	}
	sort.Slice(pooled, func(i, j int) bool { return pooled[i].v < pooled[j].v })

	// Midranks and the tie correction term Σ(t³−t).
	ranks := make([]float64, len(pooled))
	var tieTerm float64
	for i := 0; i < len(pooled); {
		j := i
		for j < len(pooled) && pooled[j].v == pooled[i].v {
			j++
		}
		mid := float64(i+j+1) / 2 // average of one-based ranks i+1..j
		for k := i; k < j; k++ {
			ranks[k] = mid
		}
		span := float64(j - i)
		tieTerm += span*span*span - span
		i = j
	}

	xRanks := make([]float64, 0, len(x))
	for i, o := range pooled {
		if o.fromX {
			xRanks = append(xRanks, ranks[i])
		}
	}
	u = floats.Sum(xRanks) - n1*(n1+1)/2

	sigma2 := n1 * n2 / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if sigma2 <= 0 {
		return u, 0, ErrDegenerate
	}
	z := (u - n1*n2/2 - 0.5) / math.Sqrt(sigma2)
	p = distuv.UnitNormal.Survival(z)

	return u, p, nil
}
