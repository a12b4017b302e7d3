package numeral

type factorPair struct {
	small, large int64
}

// Cache memoises factor selection and abbreviation allocation.
// The zero value is not usable; create one with NewCache.
// A Cache must not be used from multiple goroutines at the same time.
type Cache struct {
	factors       map[int64]factorPair
	abbreviations []string
	inUse         map[string]struct{}
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		factors: make(map[int64]factorPair),
		inUse:   make(map[string]struct{}),
	}
}

// Stats reports how many factorizations and abbreviations are memoised.
func (c *Cache) Stats() (factors, abbreviations int) {
	return len(c.factors), len(c.abbreviations)
}
