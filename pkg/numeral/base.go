package numeral

import (
	"fmt"
	"math"
)

// Base is the decomposition of a numeral base into naming parts.
// It is one of Nullary, Unary, RootRef, FactorPair, Predecessor, Negated,
// Fraction, CustomShort, CustomOneSyllable or CustomMultiSyllable.
type Base interface {
	isBase()
}

type (
	// Nullary is base 0.
	Nullary struct{}

	// Unary is base 1.
	Unary struct{}

	// RootRef is one of the atomic root bases.
	RootRef struct {
		Root Root
	}

	// FactorPair is the product of A, named in prefix form, and B, named in
	// suffix form.
	FactorPair struct {
		A, B Base
	}

	// Predecessor is a base without a usable factor pair, named after the base
	// one below it.
	Predecessor struct {
		Below Base
	}

	// Negated is the negation of Inner.
	Negated struct {
		Inner Base
	}

	// Fraction is the rational base Num/Den.
	Fraction struct {
		Num, Den Base
	}

	// CustomShort is a symbolic base below six, e.g. phi.
	CustomShort struct {
		Text string
	}

	// CustomOneSyllable is a symbolic base above six with a one-syllable stem,
	// e.g. tau.
	CustomOneSyllable struct {
		Text string
	}

	// CustomMultiSyllable is a symbolic base above six with a longer stem.
	CustomMultiSyllable struct {
		Text string
	}
)

func (Nullary) isBase()             {}
func (Unary) isBase()               {}
func (RootRef) isBase()             {}
func (FactorPair) isBase()          {}
func (Predecessor) isBase()         {}
func (Negated) isBase()             {}
func (Fraction) isBase()            {}
func (CustomShort) isBase()         {}
func (CustomOneSyllable) isBase()   {}
func (CustomMultiSyllable) isBase() {}

// Describe decomposes n into a naming tree. math.MinInt64 has no positive
// counterpart and panics.
func Describe(c *Cache, n int64) Base {
	if n == math.MinInt64 {
		panic(fmt.Errorf("%w: cannot negate %d", ErrInvalidInput, n))
	}
	if n < 0 {
		return Negated{Inner: Describe(c, -n)}
	}
	switch n {
	case 0:
		return Nullary{}
	case 1:
		return Unary{}
	}
	if r, ok := RootOf(n); ok {
		return RootRef{Root: r}
	}
	a, b := closestFactors(c, n)
	if a == 1 {
		return Predecessor{Below: Describe(c, b-1)}
	}
	return FactorPair{A: Describe(c, a), B: Describe(c, b)}
}

// DescribeRational decomposes the rational base num/den. The fraction is not
// reduced, so 2/4 and 1/2 get different names. A negative denominator stays
// inside the fraction ("bivotnegatrinary"). A negative numerator has no prefix
// form, so its sign moves onto a Negated wrapper around the whole fraction,
// or cancels against a negative denominator.
func DescribeRational(c *Cache, num, den int64) Base {
	if den == 0 {
		panic(fmt.Errorf("%w: zero denominator", ErrInvalidInput))
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		panic(fmt.Errorf("%w: cannot negate %d/%d", ErrInvalidInput, num, den))
	}
	if den == 1 || num == 0 {
		return Describe(c, num)
	}
	if num < 0 {
		if den < 0 {
			return DescribeRational(c, -num, -den)
		}
		return Negated{Inner: DescribeRational(c, -num, den)}
	}
	return Fraction{Num: Describe(c, num), Den: Describe(c, den)}
}

// DescribeSymbol wraps the stem of a non-rational base such as pi or tau.
func DescribeSymbol(text string, greaterThanSix, oneSyllable bool) Base {
	switch {
	case !greaterThanSix:
		return CustomShort{Text: text}
	case oneSyllable:
		return CustomOneSyllable{Text: text}
	default:
		return CustomMultiSyllable{Text: text}
	}
}

// Value returns the integer a naming tree stands for.
func Value(b Base) (int64, error) {
	switch b := b.(type) {
	case Nullary:
		return 0, nil
	case Unary:
		return 1, nil
	case RootRef:
		return b.Root.Value(), nil
	case FactorPair:
		x, err := Value(b.A)
		if err != nil {
			return 0, err
		}
		y, err := Value(b.B)
		if err != nil {
			return 0, err
		}
		return x * y, nil
	case Predecessor:
		x, err := Value(b.Below)
		if err != nil {
			return 0, err
		}
		return x + 1, nil
	case Negated:
		x, err := Value(b.Inner)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case Fraction:
		den, err := Value(b.Den)
		if err != nil {
			return 0, err
		}
		if den != 1 {
			return 0, ErrNotInteger
		}
		return Value(b.Num)
	case CustomShort, CustomOneSyllable, CustomMultiSyllable:
		return 0, ErrSymbolicBase
	default:
		panic(fmt.Sprintf("numeral: unexpected base %T", b))
	}
}
