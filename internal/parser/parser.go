package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Table is a parsed tabular document. Each row is keyed by header name.
type Table struct {
	Header []string
	Rows   []map[string]string
}

// Options tunes parsing. Zero values select sensible defaults.
type Options struct {
	// Delimiter for CSV. If 0, chosen from the file name (tab for .tsv, comma otherwise).
	Delimiter rune
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// Parser defines a tabular input parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(name string, r io.Reader, opt Options) (*Table, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// Parse selects a parser based on name (a file name or URL path) and parses r.
// Names without an extension are read as CSV.
func Parse(name string, r io.Reader, opt Options) (*Table, error) {
	for _, p := range registry {
		if p.CanParse(name) {
			return p.Parse(name, r, opt)
		}
	}
	if path.Ext(name) == "" {
		return csvParser{}.Parse(name, r, opt)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path.Ext(name))
}

// ParseFile opens path and parses it.
func ParseFile(p string, opt Options) (*Table, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()
	return Parse(p, f, opt)
}

func init() {
	// Register default parsers
	Register(csvParser{})
	Register(xlsxParser{})
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported input format")

// rowsToTable pairs each data row with the header. Short rows are padded with
// empty values; extra cells are ignored.
func rowsToTable(header []string, rows [][]string) *Table {
	t := &Table{Header: make([]string, len(header))}
	for i, h := range header {
		t.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	for _, rec := range rows {
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(t.Header))
		for i, h := range t.Header {
			if h == "" {
				continue
			}
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			row[h] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
