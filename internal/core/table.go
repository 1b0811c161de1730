package core

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"
)

// Table is an ordered sequence of rows sharing one ordered schema.
// The schema is fixed after load; cells are typed per column (see value.go).
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NumRows returns the number of data rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Cells renders all rows as display strings, one slice per row.
// Used by the web layer to build display-ready structures.
func (t *Table) Cells() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		out[i] = cells
	}
	return out
}

// Load parses uploaded bytes into a Table.
//
// The first record is the header; its cell order fixes the schema. Data rows
// must have the same number of fields as the header, blank rows are skipped,
// and cell kinds are inferred per column after reading. A UTF-8 BOM is
// stripped and invalid UTF-8 sequences are replaced before parsing.
//
// Returns ErrEmptyFile when the input holds no records at all, or a
// *ParseError when the content is not consistent delimited text.
func Load(data []byte) (*Table, error) {
	data = stripBOM(data)
	data = sanitizeUTF8(data)

	records, err := parseCSV(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	// Collect data rows, skipping blank ones
	var raw [][]string
	for _, row := range records[1:] {
		if isEmptyRow(row) {
			continue
		}
		raw = append(raw, row)
	}

	// Infer each column's kind from its raw cells
	kinds := make([]Kind, len(columns))
	column := make([]string, len(raw))
	for j := range columns {
		for i, row := range raw {
			column[i] = row[j]
		}
		kinds[j] = inferKind(column)
	}

	rows := make([][]Value, len(raw))
	for i, rec := range raw {
		row := make([]Value, len(columns))
		for j, cell := range rec {
			row[j] = convertCell(cell, kinds[j])
		}
		rows[i] = row
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// parseCSV reads all records, enforcing a consistent field count.
// The first record sets the expected count; a mismatch surfaces as
// csv.ErrFieldCount with line information.
func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	return r.ReadAll()
}

// stripBOM removes a leading UTF-8 byte order mark if present.
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the replacement character.
// Valid input is returned unchanged without copying.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

// isEmptyRow reports whether every cell is empty or whitespace.
func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
