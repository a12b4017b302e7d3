package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/basenames/pkg/numeral"
)

// Format selects how entries are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json", "yaml" and "yml", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encoder writes entries to an io.Writer in one format.
type Encoder struct {
	w      io.Writer
	format Format
	json   *json.Encoder
	yaml   *yaml.Encoder
}

// NewEncoder returns an encoder for format. Unknown formats fall back to text.
func NewEncoder(w io.Writer, format Format) *Encoder {
	e := &Encoder{w: w, format: format}
	switch format {
	case FormatJSON:
		e.json = json.NewEncoder(w)
	case FormatYAML:
		e.yaml = yaml.NewEncoder(w)
		e.yaml.SetIndent(2)
	default:
		e.format = FormatText
	}
	return e
}

// Encode writes a single entry.
func (e *Encoder) Encode(entry Entry) error {
	var err error
	switch e.format {
	case FormatJSON:
		err = e.json.Encode(entry)
	case FormatYAML:
		err = e.yaml.Encode(entry)
	default:
		_, err = fmt.Fprintln(e.w, entry.String())
	}
	if err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

// Close flushes the YAML stream. It is a no-op for the other formats.
func (e *Encoder) Close() error {
	if e.yaml == nil {
		return nil
	}
	if err := e.yaml.Close(); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

// Stream writes count entries starting at from. A count of zero streams until
// ctx is cancelled, in which case the context error is returned.
func Stream(ctx context.Context, c *numeral.Cache, w io.Writer, format Format, from int64, count int) (err error) {
	if err := checkRange(from, count); err != nil {
		return err
	}
	enc := NewEncoder(w, format)
	defer func() {
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}()

	for n := from; count == 0 || n < from+int64(count); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(NewEntry(c, n)); err != nil {
			return err
		}
	}
	return nil
}
