package listing

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/basenames/pkg/numeral"
)

// Entry is one line of a listing.
type Entry struct {
	Base         int64  `json:"base" yaml:"base"`
	Name         string `json:"name" yaml:"name"`
	Abbreviation string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
}

// NewEntry names base n. Bases below one have no abbreviation.
func NewEntry(c *numeral.Cache, n int64) Entry {
	e := Entry{Base: n, Name: numeral.Name(c, n)}
	if n >= 1 {
		e.Abbreviation = numeral.Abbreviation(c, n)
	}
	return e
}

// Build returns count consecutive entries starting at from.
func Build(c *numeral.Cache, from int64, count int) ([]Entry, error) {
	if err := checkRange(from, count); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, count)
	for i := range count {
		entries = append(entries, NewEntry(c, from+int64(i)))
	}
	return entries, nil
}

func checkRange(from int64, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}
	if count > 0 && from > math.MaxInt64-int64(count-1) {
		return fmt.Errorf("%w: %d entries from %d overflow", ErrInvalidRange, count, from)
	}
	return nil
}

// String renders the entry in text format.
func (e Entry) String() string {
	if e.Abbreviation == "" {
		return fmt.Sprintf("%d: %s", e.Base, e.Name)
	}
	return fmt.Sprintf("%d: %s (%s)", e.Base, e.Name, e.Abbreviation)
}
