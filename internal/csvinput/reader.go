// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvinput reads a delimited text file with a header row into rows
// addressable by column name.
package csvinput

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrMalformed marks input that cannot be parsed as delimited text with a
// usable header row. I/O failures are returned unmarked.
var ErrMalformed = errors.New("malformed CSV")

// Row is one data record. Values are trimmed of surrounding whitespace.
type Row struct {
	// Line is the 1-based line number the record starts on.
	Line int

	index  map[string]int
	fields []string
}

// Get returns the value in column name, or "" when the column is not in the
// header.
func (r Row) Get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Has reports whether column name exists in the header.
func (r Row) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Table is a parsed file: its header and data rows in file order.
type Table struct {
	Path   string
	Header []string
	Rows   []Row

	index map[string]int
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require returns an ErrMalformed error listing every name missing from the
// header.
func (t *Table) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing required column(s) %s", ErrMalformed, quoteAll(missing))
}

// Options controls parsing.
type Options struct {
	// Delimiter is the field separator; empty means comma. "tab" and "\t"
	// select a tab.
	Delimiter string
}

// Comma returns the separator rune, or an error if Delimiter is not a
// single usable character.
func (o Options) Comma() (rune, error) {
	switch o.Delimiter {
	case "", ",":
		return ',', nil
	case "tab", `\t`, "\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(o.Delimiter)
	if size != len(o.Delimiter) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", o.Delimiter)
	}
	return r, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	t, err := Read(f, opts)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Read parses r. The first record is the header; header names must be
// non-empty and unique. Every data record must have as many fields as the
// header. Blank lines are ignored. A header with no data rows yields an
// empty table.
func Read(r io.Reader, opts Options) (*Table, error) {
	comma, err := opts.Comma()
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	if err != nil {
		return nil, wrapParse(err)
	}

	t := &Table{
		Header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("%w: header column %d is empty", ErrMalformed, i+1)
		}
		if _, dup := t.index[h]; dup {
			return nil, fmt.Errorf("%w: duplicate header column %q", ErrMalformed, h)
		}
		t.Header[i] = h
		t.index[h] = i
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapParse(err)
		}
		line, _ := cr.FieldPos(0)
		fields := make([]string, len(rec))
		for i, v := range rec {
			fields[i] = strings.TrimSpace(v)
		}
		t.Rows = append(t.Rows, Row{Line: line, index: t.index, fields: fields})
	}

	return t, nil
}

// wrapParse marks csv.ParseError values as malformed input; anything else
// came from the underlying reader.
func wrapParse(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %v", ErrMalformed, pe)
	}
	return fmt.Errorf("reading input: %w", err)
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(q, ", ")
}
