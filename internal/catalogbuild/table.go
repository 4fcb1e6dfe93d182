// Package catalogbuild turns the public attractions dataset (CSV) and an
// optional accommodation-cost CSV into a places catalog.
package catalogbuild

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrColumnNotFound = errors.New("column not found")

// Table is a CSV file addressed by header name.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty csv")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &Table{index: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.header = append(t.header, h)
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Pick returns the first candidate present in the header. An exact match
// wins over a case-insensitive one.
func (t *Table) Pick(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if _, ok := t.index[c]; ok {
			return c, true
		}
	}
	for _, c := range candidates {
		for _, h := range t.header {
			if strings.EqualFold(c, h) {
				return h, true
			}
		}
	}
	return "", false
}

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Row is a single CSV record.
type Row struct {
	t      *Table
	values []string
}

func (t *Table) Row(i int) Row {
	return Row{t: t, values: t.rows[i]}
}

// Get returns the trimmed value of column, or "" when the column or the
// field is missing.
func (r Row) Get(column string) string {
	i, ok := r.t.index[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// Values returns the non-empty values of the candidate columns present in
// the table, in candidate order.
func (r Row) Values(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if !r.t.Has(c) {
			continue
		}
		if v := r.Get(c); v != "" && !strings.EqualFold(v, "nan") {
			out = append(out, v)
		}
	}
	return out
}
