// Package csvimport reads the spreadsheets print shops export from their
// old systems. Files come from Excel on Windows more often than not, so
// the reader accepts Windows-1252 as well as UTF-8 and detects whether
// columns are separated by ';' or ','.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxFileSize bounds what NewReader buffers
const MaxFileSize = 20 << 20

var (
	ErrEmptyFile     = errors.New("CSV file is empty")
	ErrMissingHeader = errors.New("CSV file missing header row")
	ErrFileTooLarge  = fmt.Errorf("CSV file exceeds %d MB", MaxFileSize>>20)
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader maps CSV records to rows keyed by normalised header name
type Reader struct {
	csv     *csv.Reader
	headers []string
	index   map[string]int
	line    int
	comma   rune
	latin1  bool
}

// Option configures a Reader
type Option func(*Reader)

// WithComma forces the field delimiter instead of sniffing it
func WithComma(c rune) Option {
	return func(r *Reader) { r.comma = c }
}

// NewReader loads the whole file, picks the encoding and the delimiter,
// then reads the header row. Any invalid UTF-8 sequence anywhere in the
// file selects Windows-1252.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	r := &Reader{index: make(map[string]int)}
	for _, opt := range opts {
		opt(r)
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	var in io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r.latin1 = true
		in = transform.NewReader(in, charmap.Windows1252.NewDecoder())
	}
	if r.comma == 0 {
		r.comma = sniffComma(data)
	}

	r.csv = csv.NewReader(in)
	r.csv.Comma = r.comma
	r.csv.LazyQuotes = true
	r.csv.TrimLeadingSpace = true
	r.csv.FieldsPerRecord = -1

	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

// sniffComma picks ';' when the first line has more semicolons than commas
func sniffComma(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte{'\n'})
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func (r *Reader) readHeader() error {
	record, err := r.csv.Read()
	if err == io.EOF {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	r.line = 1
	r.headers = make([]string, len(record))
	for i, h := range record {
		key := HeaderKey(h)
		r.headers[i] = key
		if _, dup := r.index[key]; !dup && key != "" {
			r.index[key] = i
		}
	}
	if len(r.index) == 0 {
		return ErrMissingHeader
	}
	return nil
}

// Comma returns the delimiter in use
func (r *Reader) Comma() rune { return r.comma }

// Latin1 reports whether the file was decoded from Windows-1252
func (r *Reader) Latin1() bool { return r.latin1 }

// Headers returns the normalised header names in file order
func (r *Reader) Headers() []string { return r.headers }

// Has reports whether any of the given header aliases is present
func (r *Reader) Has(aliases ...string) bool {
	for _, a := range aliases {
		if _, ok := r.index[HeaderKey(a)]; ok {
			return true
		}
	}
	return false
}

// Row is one data record. Line is the 1-based line in the file.
type Row struct {
	Line   int
	fields []string
	index  map[string]int
}

// Get returns the first non-empty value among the header aliases
func (row Row) Get(aliases ...string) string {
	for _, a := range aliases {
		i, ok := row.index[HeaderKey(a)]
		if !ok || i >= len(row.fields) {
			continue
		}
		if v := strings.TrimSpace(row.fields[i]); v != "" {
			return v
		}
	}
	return ""
}

// Empty reports whether every field is blank
func (row Row) Empty() bool {
	for _, f := range row.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Next returns the next non-blank row, or io.EOF
func (r *Reader) Next() (Row, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return Row{}, io.EOF
		}
		r.line++
		if err != nil {
			return Row{Line: r.line}, fmt.Errorf("line %d: %w", r.line, err)
		}
		row := Row{Line: r.line, fields: record, index: r.index}
		if !row.Empty() {
			return row, nil
		}
	}
}

// HeaderKey folds a header for lookups. Accents are removed, letters
// lowercased and separator runs (space, dash, dot, slash) become one underscore.
// "Razão Social" and "razao_social" share the key "razao_social".
func HeaderKey(h string) string {
	decomposed := norm.NFD.String(strings.TrimSpace(h))
	var b strings.Builder
	pendingSep := false
	for _, c := range decomposed {
		switch {
		case c >= 0x300 && c <= 0x36f:
			// combining mark left over from NFD
		case c == ' ' || c == '-' || c == '.' || c == '_' || c == '/':
			pendingSep = b.Len() > 0
		default:
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(c)
		}
	}
	return strings.ToLower(b.String())
}
