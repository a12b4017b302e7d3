package numeral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/basenames/pkg/numeral"
)

func TestFixup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single character", "a", "a"},
		{"no vowel pairs", "binary", "binary"},
		{"i then i", "bii", "bi"},
		{"i then u", "biuntriseximal", "bintriseximal"},
		{"a then o", "tetraoctal", "tetroctal"},
		{"o then o", "octooctal", "octoctal"},
		{"a then e", "tetraelevenary", "tetrelevenary"},
		{"a then u", "negauntriseximal", "neguntriseximal"},
		{"a then a is kept", "hexaa", "hexaa"},
		{"i then a is kept", "icosia", "icosia"},
		{"lookback resets after a collapse", "iii", "ii"},
		{"later vowel wins once", "aoe", "oe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeral.Fixup(tt.in))
		})
	}
}

func TestFixup_NeverGrows(t *testing.T) {
	c := numeral.NewCache()
	for n := int64(-50); n <= 2000; n++ {
		raw := numeral.Compose(numeral.Describe(c, n))
		assert.LessOrEqual(t, len(numeral.Fixup(raw)), len(raw), "base %d", n)
	}
}
