package redistribution

import (
	"math"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
)

// scaleWeight returns round(weight * fraction), rounding halves away from zero.
func scaleWeight(weight int, fraction float64) int {
	return int(math.Round(float64(weight) * fraction))
}

// PatchPool gives every variant an entry weighted by its fraction of the
// origin's current weight. Existing entries are overwritten, missing ones are
// appended. found is false, and the pool is returned unchanged, when the
// origin has no entry.
func PatchPool(pool domain.WeightedPool, originID string, shares []Share) (patched domain.WeightedPool, added int, found bool) {
	originIdx := pool.IndexOf(originID)
	if originIdx == -1 {
		return pool, 0, false
	}
	originWeight := pool[originIdx].RelativeProbability

	for _, s := range shares {
		weight := scaleWeight(originWeight, s.Fraction)
		if idx := pool.IndexOf(s.VariantID); idx != -1 {
			pool[idx].RelativeProbability = weight
			continue
		}
		pool = append(pool, domain.WeightedEntry{
			Tpl:                 s.VariantID,
			RelativeProbability: weight,
		})
		added++
	}
	return pool, added, true
}
