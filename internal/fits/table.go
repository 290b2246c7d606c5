// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fits

import (
	"fmt"
	"strings"
)

// Column describes one table column: its case-insensitive name, type-format
// code, and the type-specific attributes carried by the table header.
type Column struct {
	Name   string
	Format string
	Unit   string
	Null   any
	Scale  float64
	Zero   float64
	Disp   string
	Dim    string
}

// Table is a column-oriented record table. Each column holds one cell per
// row; a cell is a scalar (string, bool, int64, float64) or a numeric slice
// ([]int64, []float64) for multi-valued and variable-length columns.
type Table struct {
	cols []Column
	data [][]any // parallel to cols
	rows int
}

// NewTable builds a table from column descriptors and per-column cell
// sequences. All columns must have the same number of rows.
func NewTable(cols []Column, data [][]any) (*Table, error) {
	if len(cols) != len(data) {
		return nil, fmt.Errorf("table has %d columns but %d data sequences", len(cols), len(data))
	}
	rows := 0
	for i, cells := range data {
		if i == 0 {
			rows = len(cells)
			continue
		}
		if len(cells) != rows {
			return nil, fmt.Errorf("column %s has %d rows, want %d", cols[i].Name, len(cells), rows)
		}
	}
	t := &Table{cols: make([]Column, len(cols)), data: data, rows: rows}
	copy(t.cols, cols)
	return t, nil
}

// Columns returns the column descriptors in table order. The returned slice
// is backing storage and must not be mutated.
func (t *Table) Columns() []Column {
	return t.cols
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Column returns the descriptor for the named column. Lookup is
// case-insensitive.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Column{}, false
}

// Data returns the full cell sequence for the named column, or nil when no
// such column exists. Lookup is case-insensitive.
func (t *Table) Data(name string) []any {
	for i, c := range t.cols {
		if strings.EqualFold(c.Name, name) {
			return t.data[i]
		}
	}
	return nil
}
