package namingapi

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start naming API server")

	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shut down naming API server gracefully")

	// ErrInvalidNumber is returned for path or query values that are not integers.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrListingTooLarge is returned when a listing asks for more entries than allowed.
	ErrListingTooLarge = errors.New("listing exceeds the maximum size")

	// ErrBaseTooLarge is returned for bases beyond the configured magnitude.
	ErrBaseTooLarge = errors.New("base exceeds the maximum magnitude")

	// ErrZeroDenominator is returned for rationals with a zero denominator.
	ErrZeroDenominator = errors.New("denominator must not be zero")
)
