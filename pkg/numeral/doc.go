// Package numeral names integer numeral bases using a pronounceable invented
// vocabulary, e.g. base 12 is "dozenal", base 19 is "untriseximal" and base
// 60 is "hexagesimal". It also derives short unique uppercase abbreviations
// ("DOZ", "UNT", "HXG"...) for every base in a contiguous range.
//
// # Naming
//
// Seventeen root bases (2-13, 16, 17, 20, 36 and 100) carry hand-assigned
// names. Every other integer is decomposed into a factor pair whose total
// number of root references is minimal, ties going to the most balanced pair.
// The smaller factor is rendered in prefix form ("hexa") and the larger one
// in suffix form ("gesimal"). Integers with no usable factor pair are named
// after their predecessor with an "un" prefix; when such a base appears as a
// prefix itself it is wrapped as "hen...sna". Negative bases get "nega",
// fractional bases use "vot" and symbolic bases such as pi or phi take a
// caller-supplied stem.
//
// A final vowel fixup pass collapses awkward vowel pairs produced by plain
// concatenation ("tetra"+"octal" becomes "tetroctal").
//
// # Cache
//
// Factor selection and abbreviation allocation are memoised in a Cache owned
// by the caller. The cache is not safe for concurrent use; share one across
// goroutines only behind a lock. Abbreviations are allocated in strictly
// increasing order because each one must avoid every code handed out before
// it, so two fresh caches always produce identical sequences.
//
// # Usage
//
//	c := numeral.NewCache()
//	numeral.Name(c, 60)                 // "hexagesimal"
//	numeral.RationalName(c, 2, 3)       // "bivottrinary"
//	numeral.SymbolName("phi", false, true) // "phinary"
//	numeral.Abbreviation(c, 1000)       // "DCS"
//	n, err := numeral.Parse("dozenal")  // 12, nil
//
// # Error Handling
//
// Only Parse returns an error (ErrUnknownName). Misuse of the algorithms, such
// as asking for the abbreviation of zero, is a programming error and panics
// with an error wrapping ErrInvalidInput.
package numeral
