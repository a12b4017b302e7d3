package numeral

// Root is one of the atomic bases that carry their own name.
type Root struct {
	value  int64
	name   string
	prefix string
	suffix string
}

func (r Root) Value() int64 { return r.value }

// Name returns the canonical stand-alone name, e.g. "decimal".
func (r Root) Name() string { return r.name }

// Prefix returns the morpheme used when the root leads a composite name.
func (r Root) Prefix() string { return r.prefix }

// Suffix returns the morpheme used when the root ends a composite name.
// Only decimal ("gesimal") and baker's dozenal ("ker's dozenal") differ from
// the canonical name.
func (r Root) Suffix() string {
	if r.suffix != "" {
		return r.suffix
	}
	return r.name
}

var roots = []Root{
	{value: 2, name: "binary", prefix: "bi"},
	{value: 3, name: "trinary", prefix: "tri"},
	{value: 4, name: "quaternary", prefix: "tetra"},
	{value: 5, name: "quinary", prefix: "penta"},
	{value: 6, name: "seximal", prefix: "hexa"},
	{value: 7, name: "septimal", prefix: "hepta"},
	{value: 8, name: "octal", prefix: "octo"},
	{value: 9, name: "nonary", prefix: "enna"},
	{value: 10, name: "decimal", prefix: "deca", suffix: "gesimal"},
	{value: 11, name: "elevenary", prefix: "leva"},
	{value: 12, name: "dozenal", prefix: "doza"},
	{value: 13, name: "baker's dozenal", prefix: "baker", suffix: "ker's dozenal"},
	{value: 16, name: "hex", prefix: "tesser"},
	{value: 17, name: "suboptimal", prefix: "mal"},
	{value: 20, name: "vigesimal", prefix: "icosi"},
	{value: 36, name: "niftimal", prefix: "feta"},
	{value: 100, name: "centesimal", prefix: "hecto"},
}

var (
	rootsByValue = make(map[int64]Root, len(roots))
	rootsByName  = make(map[string]Root, len(roots))
)

func init() {
	for _, r := range roots {
		rootsByValue[r.value] = r
		rootsByName[r.name] = r
	}
}

// RootOf returns the root base with value n, if there is one.
func RootOf(n int64) (Root, bool) {
	r, ok := rootsByValue[n]
	return r, ok
}

// Roots returns all root bases in ascending order.
func Roots() []Root {
	out := make([]Root, len(roots))
	copy(out, roots)
	return out
}
