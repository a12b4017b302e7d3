package numeral

import (
	"fmt"
	"strings"
)

// Compose renders the full name of b without the vowel fixup pass.
func Compose(b Base) string {
	var sb strings.Builder
	writeName(&sb, b)
	return sb.String()
}

func writeName(sb *strings.Builder, b Base) {
	switch b := b.(type) {
	case Nullary:
		sb.WriteString("nullary")
	case Unary:
		sb.WriteString("unary")
	case RootRef:
		sb.WriteString(b.Root.Name())
	case FactorPair:
		writePrefix(sb, b.A)
		writeSuffix(sb, b.B)
	case Predecessor:
		sb.WriteString("un")
		writeName(sb, b.Below)
	case Negated:
		sb.WriteString("nega")
		writeName(sb, b.Inner)
	case Fraction:
		if v, err := Value(b.Num); err != nil || v != 1 {
			writePrefix(sb, b.Num)
		}
		sb.WriteString("vot")
		writeName(sb, b.Den)
	case CustomShort:
		sb.WriteString(b.Text)
		if endsInVowelOrY(b.Text) {
			sb.WriteString("nary")
		} else {
			sb.WriteString("ary")
		}
	case CustomOneSyllable:
		sb.WriteString(b.Text)
		sb.WriteString("imal")
	case CustomMultiSyllable:
		sb.WriteString(b.Text)
		sb.WriteString("al")
	default:
		panic(fmt.Sprintf("numeral: unexpected base %T", b))
	}
}

// writePrefix renders b as the leading part of a composite name. Only roots,
// factor pairs and predecessors have a prefix form.
func writePrefix(sb *strings.Builder, b Base) {
	switch b := b.(type) {
	case RootRef:
		sb.WriteString(b.Root.Prefix())
	case FactorPair:
		writePrefix(sb, b.A)
		writePrefix(sb, b.B)
	case Predecessor:
		sb.WriteString("hen")
		writePrefix(sb, b.Below)
		sb.WriteString("sna")
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedPrefix, b))
	}
}

func writeSuffix(sb *strings.Builder, b Base) {
	if r, ok := b.(RootRef); ok {
		sb.WriteString(r.Root.Suffix())
		return
	}
	writeName(sb, b)
}

func endsInVowelOrY(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexByte("aeiouy", s[len(s)-1]) >= 0
}
