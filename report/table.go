// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report provides the derived tables built from cuffdiff output:
// the per-condition HIDATA gene lists, the condition by replicate FPKM
// expression matrix with its expressed and significant gene subsets, and
// the GCT matrix exchange format. It also provides a delimited text
// writer and reader for the tables.
package report

import (
	"math"
	"strconv"
	"strings"
)

// Table is a string table with optional column headers and an optional
// row index.
type Table struct {
	// Levels holds the names of the header levels
	// for a multi-level header. It may be nil.
	Levels []string

	// Header holds the column header rows, one
	// row per level. It may be nil.
	Header [][]string

	// IndexName and Index hold the name of
	// the row index and the row labels. Index
	// is either nil or has one label per row.
	IndexName string
	Index     []string

	// Rows holds the table data.
	Rows [][]string
}

// Shape returns the number of data rows and columns of t, and the number
// of empty data cells. Header and index cells are not counted.
func (t Table) Shape() (rows, cols, empty int) {
	cols = t.width()
	for _, r := range t.Rows {
		for _, f := range r {
			if f == "" {
				empty++
			}
		}
	}
	return len(t.Rows), cols, empty
}

func (t Table) width() int {
	switch {
	case len(t.Header) != 0:
		return len(t.Header[0])
	case len(t.Rows) != 0:
		return len(t.Rows[0])
	}
	return 0
}

// FormatFloat returns the text form of v used in table cells. Values are
// written in their shortest exact form with at least one decimal place,
// switching to exponent form for very large and very small magnitudes.
// NaN is written as an empty cell.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
