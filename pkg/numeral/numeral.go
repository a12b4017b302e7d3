package numeral

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Name returns the name of base n, e.g. "hexagesimal" for 60.
func Name(c *Cache, n int64) string {
	return Fixup(Compose(Describe(c, n)))
}

// RationalName returns the name of the fractional base num/den, e.g.
// "bivottrinary" for 2/3. A denominator of one yields the integer name.
func RationalName(c *Cache, num, den int64) string {
	return Fixup(Compose(DescribeRational(c, num, den)))
}

// SymbolName names a non-rational base from its stem, e.g. "phinary" for
// phi or "tauimal" for tau. The result is not fixed up.
func SymbolName(text string, greaterThanSix, oneSyllable bool) string {
	return Compose(DescribeSymbol(text, greaterThanSix, oneSyllable))
}

// Parse returns the value of a root base name such as "dozenal".
// Composite names are not recognised.
func Parse(name string) (int64, error) {
	r, ok := rootsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return r.Value(), nil
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

// ParseFold is Parse for user input: surrounding space is trimmed, case is
// folded and typographic apostrophes are accepted, so "Baker’s Dozenal"
// parses as 13.
func ParseFold(name string) (int64, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return Parse(apostrophes.Replace(folded))
}
