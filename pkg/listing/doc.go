// Package listing turns ranges of numeral bases into entries of
// "base, name, abbreviation" and writes them as plain text, JSON lines or a
// YAML document stream.
//
// The text format is the classic one-entry-per-line listing:
//
//	1: unary (UNA)
//	2: binary (BIN)
//	19: untriseximal (UNT)
//
// # Usage
//
//	c := numeral.NewCache()
//	err := listing.Stream(ctx, c, os.Stdout, listing.FormatText, 1, 0)
//
// A count of zero streams until the context is cancelled. Entries are built in
// increasing order, which is also the order the abbreviation table has to be
// filled in, so streaming never does more work than the last entry needs.
//
// # Error Handling
//
//   - ErrUnknownFormat – ParseFormat got something other than text, json or yaml.
//   - ErrInvalidRange  – negative count or a range that would overflow.
//
// Write errors are returned wrapped with ErrWrite.
package listing
