package numeral

import "errors"

var (
	// ErrUnknownName is returned by Parse when the text is not a root base name.
	ErrUnknownName = errors.New("unknown base name")

	// ErrInvalidInput is wrapped by panics raised for arguments outside an
	// algorithm's domain, e.g. factoring a number below two.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedPrefix is wrapped by the panic raised when a base that has
	// no prefix form reaches prefix position.
	ErrUnsupportedPrefix = errors.New("base has no prefix form")

	// ErrNotInteger is returned by Value for fractional bases.
	ErrNotInteger = errors.New("base is not an integer")

	// ErrSymbolicBase is returned by Value for caller-named symbolic bases.
	ErrSymbolicBase = errors.New("symbolic base has no numeric value")
)
