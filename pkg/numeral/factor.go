package numeral

import (
	"fmt"
	"math"
)

// sqrtSeed is the starting guess for the scan-bound approximation.
const sqrtSeed = 1255

// scanBound approximates the square root of n with four Newton steps from a
// fixed seed and adds one. Newton steps never undershoot after the first, so
// the result is at least the true square root.
func scanBound(n int64) int64 {
	if n < 2 {
		return n
	}
	a := int64(sqrtSeed)
	for range 4 {
		a = (a + n/a) / 2
	}
	return a + 1
}

// closestFactors picks the factor pair of n whose names use the fewest root
// references, preferring the smallest gap between the factors on ties.
// It returns (1, n) when n has no factor pair.
func closestFactors(c *Cache, n int64) (int64, int64) {
	if n < 2 {
		panic(fmt.Errorf("%w: cannot factor %d", ErrInvalidInput, n))
	}
	if p, ok := c.factors[n]; ok {
		return p.small, p.large
	}

	best := factorPair{small: 1, large: n}
	bestCount := math.MaxInt
	for s := min(scanBound(n), n) - 1; s >= 2; s-- {
		if n%s != 0 {
			continue
		}
		small, large := s, n/s
		if large < small {
			small, large = large, small
		}
		count := rootCount(c, small, false) + rootCount(c, large, false)
		if count > bestCount {
			continue
		}
		if count < bestCount {
			bestCount = count
			best = factorPair{small: small, large: large}
		}
		if large-small < best.large-best.small {
			best = factorPair{small: small, large: large}
		}
	}

	c.factors[n] = best
	return best.small, best.large
}

// rootCount returns how many root references the name of n contains.
// In prefix position a prime costs one more root for its "hen...sna" wrapping.
func rootCount(c *Cache, n int64, prefix bool) int {
	if n < 0 {
		panic(fmt.Errorf("%w: cannot count roots of %d", ErrInvalidInput, n))
	}
	if n == 1 {
		return 1
	}
	if _, ok := RootOf(n); ok {
		return 1
	}
	a, b := closestFactors(c, n)
	if a == 1 {
		if prefix {
			return 2 + rootCount(c, n-1, true)
		}
		return 1 + rootCount(c, n-1, false)
	}
	return rootCount(c, a, true) + rootCount(c, b, prefix)
}
