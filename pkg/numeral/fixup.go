package numeral

import "strings"

// Fixup collapses vowel pairs left behind by concatenating morphemes:
// "ii" and "iu" become "i", and an 'a' or 'o' followed by o, e, i or u is
// dropped in favour of the later vowel. The character after a collapsed
// pair is never compared with it.
func Fixup(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	var prev rune
	buffered := false
	for _, ch := range s {
		switch {
		case !buffered:
			prev, buffered = ch, true
		case prev == 'i' && (ch == 'i' || ch == 'u'):
			sb.WriteRune('i')
			buffered = false
		case (prev == 'a' || prev == 'o') && strings.ContainsRune("oeiu", ch):
			sb.WriteRune(ch)
			buffered = false
		default:
			sb.WriteRune(prev)
			prev = ch
		}
	}
	if buffered {
		sb.WriteRune(prev)
	}
	return sb.String()
}
