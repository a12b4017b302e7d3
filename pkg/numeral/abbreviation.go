package numeral

import (
	"fmt"
	"math/bits"
	"strings"
)

// minAbbreviationLen is the length of the shortest abbreviation tried.
const minAbbreviationLen = 3

// Abbreviation returns the unique uppercase code of base n, allocating codes
// for every smaller base first. The table starts at base 0, so "nullary"
// claims its code before base 1 does. n must be at least 1.
func Abbreviation(c *Cache, n int64) string {
	if n < 1 {
		panic(fmt.Errorf("%w: no abbreviation for base %d", ErrInvalidInput, n))
	}
	for k := int64(len(c.abbreviations)); k <= n; k++ {
		abbr := allocate(c, abbreviationSource(Fixup(Compose(Describe(c, k)))))
		c.abbreviations = append(c.abbreviations, abbr)
		c.inUse[abbr] = struct{}{}
	}
	return c.abbreviations[n]
}

// Abbreviations returns a copy of every code allocated so far, indexed by base.
func Abbreviations(c *Cache) []string {
	out := make([]string, len(c.abbreviations))
	copy(out, c.abbreviations)
	return out
}

// abbreviationSource uppercases name, strips spaces and apostrophes and
// drops vowels after the third character of the name.
func abbreviationSource(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch == ' ' || ch == '\'' {
			continue
		}
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if i >= 3 && strings.IndexByte("AEIOU", ch) >= 0 {
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func allocate(c *Cache, source string) string {
	if source == "" {
		panic(fmt.Errorf("%w: empty abbreviation source", ErrInvalidInput))
	}
	lead, rest := source[:1], source[1:]
	it := newCandidates(len(rest))
	for mask, ok := it.next(); ok; mask, ok = it.next() {
		abbr := lead + pick(rest, mask)
		if _, taken := c.inUse[abbr]; !taken {
			return abbr
		}
	}
	panic(fmt.Sprintf("numeral: abbreviations of %q exhausted", source))
}

// pick returns the characters of s whose positions are set in mask, in order.
func pick(s string, mask uint64) string {
	var sb strings.Builder
	for i := 0; i < len(s) && mask != 0; i++ {
		if mask&1 != 0 {
			sb.WriteByte(s[i])
		}
		mask >>= 1
	}
	return sb.String()
}

// candidates enumerates selection masks over n characters: all masks with
// two bits set in increasing order, then three bits, and so on. Once the
// first mask has been handed out, reaching a mask that selects the last
// character ends the current length.
type candidates struct {
	n     int
	ones  int
	mask  uint64
	first bool
	done  bool
}

func newCandidates(n int) *candidates {
	if n > 63 {
		panic(fmt.Errorf("%w: abbreviation source of %d letters is too long", ErrInvalidInput, n+1))
	}
	it := &candidates{n: n, first: true}
	it.start(minAbbreviationLen - 1)
	return it
}

func (it *candidates) start(ones int) {
	it.ones = ones
	if ones > it.n {
		it.done = true
		return
	}
	it.mask = 1<<ones - 1
}

func (it *candidates) next() (uint64, bool) {
	for !it.done {
		last := uint64(1) << (it.n - 1)
		if it.mask >= 1<<it.n || (!it.first && it.mask&last != 0) {
			it.start(it.ones + 1)
			continue
		}
		mask := it.mask
		it.mask = nextSameOnes(mask)
		it.first = false
		return mask, true
	}
	return 0, false
}

// nextSameOnes returns the smallest integer above x with as many set bits.
func nextSameOnes(x uint64) uint64 {
	low := x & -x
	ripple := x + low
	ones := (x ^ ripple) >> (bits.TrailingZeros64(low) + 2)
	return ripple | ones
}
