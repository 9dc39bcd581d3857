// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuffdiff

import (
	"io"

	"github.com/ahmetb/go-linq"
)

// Diff is a row of a gene_exp.diff table, holding the result of a
// single pairwise differential expression test.
type Diff struct {
	TestID  string
	GeneID  string
	Gene    string
	Locus   string
	Sample1 string
	Sample2 string
	Status  Status

	Value1         float64
	Value2         float64
	Log2FoldChange float64
	TestStat       float64
	PValue         float64
	QValue         float64

	// Significant is true when the
	// significant field is "yes".
	Significant bool

	// empty is the number of empty
	// cells in the source row.
	empty int
}

// ReadDiffs returns the differential expression records held in the
// file at path, with fields separated by delim.
func ReadDiffs(path string, delim rune) ([]Diff, Summary, error) {
	t, err := readTable(path, delim, diffRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return diffs(t)
}

// ParseDiffs returns the differential expression records read from r.
// The name is used for error reporting.
func ParseDiffs(r io.Reader, name string, delim rune) ([]Diff, Summary, error) {
	t, err := parseTable(r, name, delim, diffRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return diffs(t)
}

var diffRequired = []string{"test_id", "gene", "significant"}

func diffs(t *table) ([]Diff, Summary, error) {
	recs := make([]Diff, len(t.rows))
	for i, row := range t.rows {
		r := Diff{
			TestID:      t.field(row, "test_id"),
			GeneID:      t.field(row, "gene_id"),
			Gene:        t.field(row, "gene"),
			Locus:       t.field(row, "locus"),
			Sample1:     t.field(row, "sample_1"),
			Sample2:     t.field(row, "sample_2"),
			Status:      Status(t.field(row, "status")),
			Significant: t.field(row, "significant") == "yes",
			empty:       emptyCells(row),
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{name: "value_1", dst: &r.Value1},
			{name: "value_2", dst: &r.Value2},
			{name: "log2(fold_change)", dst: &r.Log2FoldChange},
			{name: "test_stat", dst: &r.TestStat},
			{name: "p_value", dst: &r.PValue},
			{name: "q_value", dst: &r.QValue},
		} {
			var err error
			*f.dst, err = t.float(i, f.name)
			if err != nil {
				return nil, Summary{}, err
			}
		}
		recs[i] = r
	}
	return recs, t.summary(), nil
}

// DiffSummary returns the shape of the table holding diffs, with the
// given header columns.
func DiffSummary(diffs []Diff, columns []string) Summary {
	s := Summary{Columns: columns, Rows: len(diffs)}
	for _, d := range diffs {
		s.Empty += d.empty
	}
	return s
}

// SignificantOnly returns the diffs that are marked significant,
// retaining their order.
func SignificantOnly(diffs []Diff) []Diff {
	var sig []Diff
	linq.From(diffs).WhereT(func(d Diff) bool {
		return d.Significant
	}).ToSlice(&sig)
	return sig
}
