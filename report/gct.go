// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"strconv"
	"strings"
)

// GCTVersion is the format tag on the first line of a GCT file.
const GCTVersion = "#1.2"

// GCT column names.
const (
	GCTName        = "NAME"
	GCTDescription = "Description"
)

// labelCleaner removes the characters that are not kept when a column
// label is flattened.
var labelCleaner = strings.NewReplacer("(", "", ")", "", "'", "", " ", "")

// FlattenLabel returns a single token for a multi-part column label,
// removing parentheses, quotes and spaces from each part and joining the
// parts with underscores.
func FlattenLabel(parts ...string) string {
	clean := make([]string, len(parts))
	for i, p := range parts {
		clean[i] = labelCleaner.Replace(p)
	}
	return strings.Join(clean, "_")
}

// GCT returns the significant genes matrix m in GCT format. The mean
// column is dropped, and the gene name, in upper case, is given as both
// the NAME and the Description of each row. The GCT header lines are held
// in the first three rows of the returned table, so it should be written
// without a header or index.
//
// GCT returns a *FormatError if m has no mean column or no gene column.
func GCT(m *Matrix) (Table, error) {
	if !m.HasMean() {
		return Table{}, &FormatError{Err: errors.New("no mean column: matrix is not an expression summary")}
	}
	if !m.HasGene() {
		return Table{}, &FormatError{Err: errors.New("no gene column to use as NAME")}
	}

	names := make([]string, 0, len(m.keys)+2)
	names = append(names, GCTName, GCTDescription)
	for _, k := range m.keys {
		names = append(names, FlattenLabel(k.Condition, k.Replicate))
	}
	width := len(names)

	rows := make([][]string, 0, len(m.ids)+3)
	rows = append(rows,
		padRow(width, GCTVersion),
		padRow(width, strconv.Itoa(len(m.ids)), strconv.Itoa(width-2)),
		names,
	)
	for i, r := range m.data {
		name := strings.ToUpper(m.gene[i])
		row := make([]string, 0, width)
		row = append(row, name, name)
		for _, v := range r {
			row = append(row, FormatFloat(v))
		}
		rows = append(rows, row)
	}
	return Table{Rows: rows}, nil
}

// padRow returns a row of width cells starting with the given values
// and padded with empty cells.
func padRow(width int, vals ...string) []string {
	row := make([]string, width)
	copy(row, vals)
	return row
}
