// Package workload generates synthetic cache access patterns.
package workload

import (
	"math"
	"math/rand/v2"
	"strconv"
)

// Zipf returns n string keys drawn from a Zipfian distribution over keySpace
// distinct keys. theta controls the skew (higher = more skewed); seed makes
// runs reproducible.
func Zipf(n, keySpace int, theta float64, seed uint64) []string {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	keys := make([]string, n)

	spread := keySpace + 1
	zeta2 := zeta(2, theta)
	zetaN := zeta(uint64(spread), theta)
	alpha := 1.0 / (1.0 - theta)
	eta := (1 - math.Pow(2.0/float64(spread), 1.0-theta)) / (1.0 - zeta2/zetaN)
	halfPowTheta := 1.0 + math.Pow(0.5, theta)

	for i := range n {
		u := rng.Float64()
		uz := u * zetaN
		var pick int
		switch {
		case uz < 1.0:
			pick = 0
		case uz < halfPowTheta:
			pick = 1
		default:
			pick = int(float64(spread) * math.Pow(eta*u-eta+1.0, alpha))
		}
		if pick >= keySpace {
			pick = keySpace - 1
		}
		keys[i] = strconv.Itoa(pick)
	}
	return keys
}

func zeta(n uint64, theta float64) float64 {
	sum := 0.0
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}
