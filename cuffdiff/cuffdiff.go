// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cuffdiff provides types and functions for reading the tabular
// output of the Cufflinks cuffdiff differential expression tool.
//
// Three tables are supported: the gene FPKM tracking table
// (genes.fpkm_tracking), the per-replicate read group tracking table
// (genes.read_group_tracking) and the differential expression test table
// (gene_exp.diff). Each table is read in full into memory.
package cuffdiff

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Status is a cuffdiff test or quantification status.
type Status string

const (
	OK      Status = "OK"
	Fail    Status = "FAIL"
	HIData  Status = "HIDATA"
	LowData Status = "LOWDATA"
	NoTest  Status = "NOTEST"
)

// Usable returns whether a quantification with status s may contribute
// to an expression estimate. FAIL and HIDATA quantifications may not.
func (s Status) Usable() bool {
	return s != Fail && s != HIData
}

// Summary describes the shape of a parsed input table.
type Summary struct {
	// Columns is the header of the table.
	Columns []string

	// Rows is the number of data rows.
	Rows int

	// Empty is the number of empty cells
	// in the data rows.
	Empty int
}

// table is a delimited file held in memory with named columns.
type table struct {
	name   string
	header []string
	col    map[string]int
	rows   [][]string
}

// readTable reads the delimited file at path, checking that the header
// contains all the required column names.
func readTable(path string, delim rune, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	defer f.Close()
	return parseTable(f, path, delim, required...)
}

// parseTable reads a delimited table from r. The name is used only for
// error reporting.
func parseTable(r io.Reader, name string, delim rune, required ...string) (*table, error) {
	c := csv.NewReader(r)
	c.Comma = delim
	c.LazyQuotes = true

	header, err := c.Read()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &InputFormatError{Path: name, Line: 1, Err: err}
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := col[h]; !ok {
			col[h] = i
		}
	}
	var missing []string
	for _, req := range required {
		if _, ok := col[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) != 0 {
		return nil, &InputFormatError{Path: name, Line: 1, Err: fmt.Errorf("missing required columns: %q", missing)}
	}

	rows, err := c.ReadAll()
	if err != nil {
		line := 0
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			line = perr.Line
		}
		return nil, &InputFormatError{Path: name, Line: line, Err: err}
	}
	return &table{name: name, header: header, col: col, rows: rows}, nil
}

// summary returns the shape of the table.
func (t *table) summary() Summary {
	s := Summary{Columns: t.header, Rows: len(t.rows)}
	for _, r := range t.rows {
		s.Empty += emptyCells(r)
	}
	return s
}

// emptyCells returns the number of empty fields in row.
func emptyCells(row []string) int {
	var n int
	for _, f := range row {
		if f == "" {
			n++
		}
	}
	return n
}

// field returns the named field of row, or the empty string if the
// table has no such column.
func (t *table) field(row []string, name string) string {
	i, ok := t.col[name]
	if !ok {
		return ""
	}
	return row[i]
}

// missing is the set of field values read as a missing number. It holds
// the cuffdiff "-" placeholder, the C library spellings of NaN that
// cuffdiff writes for undefined values and the usual NA tokens of
// tabular data tools.
var missing = map[string]bool{
	"": true, "-": true,

	"nan": true, "-nan": true, "NaN": true, "-NaN": true,
	"NA": true, "N/A": true, "n/a": true, "<NA>": true,
	"#N/A": true, "#N/A N/A": true, "#NA": true,
	"NULL": true, "null": true, "None": true,
	"1.#IND": true, "-1.#IND": true, "1.#QNAN": true, "-1.#QNAN": true,
}

// float returns the named field of the i'th row as a float64. Missing
// columns and missing values are returned as NaN.
func (t *table) float(i int, name string) (float64, error) {
	f := t.field(t.rows[i], name)
	if missing[f] {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return v, &InputFormatError{Path: t.name, Line: lineOf(i), Err: fmt.Errorf("invalid %s value: %w", name, err)}
	}
	return v, nil
}

// lineOf returns the file line number of the i'th data row, assuming
// a single header line and no blank lines.
func lineOf(i int) int { return i + 2 }
