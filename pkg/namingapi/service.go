package namingapi

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/basenames/pkg/listing"
	"github.com/dmitrymomot/basenames/pkg/numeral"
)

const (
	// DefaultMaxListing bounds listing requests when no limit is configured.
	DefaultMaxListing = 1000
	// DefaultMaxBase bounds the magnitude of bases a request may name.
	DefaultMaxBase int64 = 100_000
)

// Service serialises access to a shared naming cache and bounds the work a
// single request may ask for.
type Service struct {
	mu         sync.Mutex
	cache      *numeral.Cache
	maxListing int
	maxBase    int64
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMaxListing caps the number of entries a single listing may return.
// Non-positive values are ignored.
func WithMaxListing(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxListing = n
		}
	}
}

// WithMaxBase caps the magnitude of any base, numerator or denominator.
// Non-positive values are ignored.
func WithMaxBase(n int64) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxBase = n
		}
	}
}

// NewService wraps c. A nil cache is replaced by a fresh one.
func NewService(c *numeral.Cache, opts ...ServiceOption) *Service {
	if c == nil {
		c = numeral.NewCache()
	}
	s := &Service{cache: c, maxListing: DefaultMaxListing, maxBase: DefaultMaxBase}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) checkBase(n int64) error {
	if n > s.maxBase || n < -s.maxBase {
		return fmt.Errorf("%w: |%d| > %d", ErrBaseTooLarge, n, s.maxBase)
	}
	return nil
}

// Entry names base n.
func (s *Service) Entry(n int64) (listing.Entry, error) {
	if err := s.checkBase(n); err != nil {
		return listing.Entry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return listing.NewEntry(s.cache, n), nil
}

// Listing returns count entries starting at from.
func (s *Service) Listing(from int64, count int) ([]listing.Entry, error) {
	if count > s.maxListing {
		return nil, fmt.Errorf("%w: %d > %d", ErrListingTooLarge, count, s.maxListing)
	}
	if err := s.checkBase(from); err != nil {
		return nil, err
	}
	if count > 0 {
		if err := s.checkBase(from + int64(count) - 1); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return listing.Build(s.cache, from, count)
}

// Rational names the fractional base num/den.
func (s *Service) Rational(num, den int64) (string, error) {
	if den == 0 {
		return "", ErrZeroDenominator
	}
	if err := s.checkBase(num); err != nil {
		return "", err
	}
	if err := s.checkBase(den); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return numeral.RationalName(s.cache, num, den), nil
}

// Prewarm allocates abbreviations up to n so the first requests for large
// bases do not pay for the whole table. n is clamped to the base limit.
func (s *Service) Prewarm(n int64) {
	n = min(n, s.maxBase)
	if n < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	numeral.Abbreviation(s.cache, n)
}

// Stats reports the size of the cache tables.
func (s *Service) Stats() (factors, abbreviations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Stats()
}
