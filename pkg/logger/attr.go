package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty attribute,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Base records a numeral base under "base".
func Base(n int64) slog.Attr {
	return slog.Int64("base", n)
}

// Name records a base name under "name".
func Name(name string) slog.Attr {
	return slog.String("name", name)
}

// Abbreviation records an abbreviation under "abbreviation". Bases below one
// have none, and the empty attribute is dropped.
func Abbreviation(abbr string) slog.Attr {
	if abbr == "" {
		return slog.Attr{}
	}
	return slog.String("abbreviation", abbr)
}

// CacheStats groups the sizes of the naming cache tables under "cache".
func CacheStats(factors, abbreviations int) slog.Attr {
	return slog.Group("cache",
		slog.Int("factors", factors),
		slog.Int("abbreviations", abbreviations),
	)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
