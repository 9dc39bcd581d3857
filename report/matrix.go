// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"

	"github.com/biogo/store/llrb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kortschak/cuffparse/cuffdiff"
	"github.com/kortschak/cuffparse/internal/index"
)

// Key is an expression matrix column key.
type Key struct {
	Condition string
	Replicate string
}

// Compare satisfies the llrb.Comparable interface, ordering by condition
// and then replicate.
func (k Key) Compare(b llrb.Comparable) int {
	o := b.(Key)
	return index.ByConditionReplicate(k.Condition, k.Replicate, o.Condition, o.Replicate)
}

// Matrix is a gene by (condition, replicate) FPKM expression matrix.
// Rows are keyed by tracking ID. Missing cells hold NaN.
//
// A Matrix may carry two derived columns, the row mean and the
// annotated gene name. Matrix values are not mutated once built; each
// transformation returns a new Matrix.
type Matrix struct {
	ids  []string
	keys []Key
	data [][]float64

	mean    []float64
	hasMean bool

	gene    []string
	hasGene bool
}

// Pivot returns the expression matrix of the read group quantifications
// in recs. Quantifications with FAIL or HIDATA status, or without an
// FPKM value, are excluded.
//
// Rows are ordered by tracking ID and columns by condition and replicate.
// The columns are the cross product of the conditions and replicates of
// the included quantifications, less any column with no values. Repeated
// quantifications of a cell are averaged.
func Pivot(recs []cuffdiff.ReadGroup) *Matrix {
	type cell struct {
		sum float64
		n   int
	}
	var ids, conds, reps, seen index.Set
	cells := make(map[string]map[Key]*cell)
	for _, r := range recs {
		if !r.Status.Usable() || math.IsNaN(r.FPKM) {
			continue
		}
		k := Key{Condition: r.Condition, Replicate: r.Replicate}
		ids.Insert(index.String(r.TrackingID))
		conds.Insert(index.String(r.Condition))
		reps.Insert(replicate(r.Replicate))
		seen.Insert(k)

		row, ok := cells[r.TrackingID]
		if !ok {
			row = make(map[Key]*cell)
			cells[r.TrackingID] = row
		}
		c, ok := row[k]
		if !ok {
			c = &cell{}
			row[k] = c
		}
		c.sum += r.FPKM
		c.n++
	}

	var keys []Key
	for _, c := range conds.Strings() {
		for _, r := range reps.Keys() {
			k := Key{Condition: c, Replicate: string(r.(replicate))}
			if seen.Has(k) {
				keys = append(keys, k)
			}
		}
	}

	m := &Matrix{ids: ids.Strings(), keys: keys}
	m.data = make([][]float64, len(m.ids))
	for i, id := range m.ids {
		row := make([]float64, len(keys))
		for j, k := range keys {
			c, ok := cells[id][k]
			if !ok {
				row[j] = math.NaN()
				continue
			}
			row[j] = c.sum / float64(c.n)
		}
		m.data[i] = row
	}
	return m
}

// replicate is a llrb.Comparable replicate label.
type replicate string

func (r replicate) Compare(b llrb.Comparable) int {
	return index.CompareReplicate(string(r), string(b.(replicate)))
}

// Rows returns the number of rows in m.
func (m *Matrix) Rows() int { return len(m.ids) }

// IDs returns the tracking IDs of the rows of m.
func (m *Matrix) IDs() []string { return m.ids }

// Keys returns the column keys of m.
func (m *Matrix) Keys() []Key { return m.keys }

// Row returns the FPKM values of the i'th row of m.
func (m *Matrix) Row(i int) []float64 { return m.data[i] }

// HasMean returns whether m has a mean column.
func (m *Matrix) HasMean() bool { return m.hasMean }

// Means returns the mean column of m, or nil if m has no mean column.
func (m *Matrix) Means() []float64 { return m.mean }

// HasGene returns whether m has a gene annotation column.
func (m *Matrix) HasGene() bool { return m.hasGene }

// Genes returns the gene annotation column of m, or nil if m has not
// been annotated.
func (m *Matrix) Genes() []string { return m.gene }

// Shape returns the number of rows and columns of m, including any
// derived columns, and the number of missing cells.
func (m *Matrix) Shape() (rows, cols, empty int) {
	cols = len(m.keys)
	if m.hasMean {
		cols++
		empty += floats.Count(math.IsNaN, m.mean)
	}
	if m.hasGene {
		cols++
	}
	for _, r := range m.data {
		empty += floats.Count(math.IsNaN, r)
	}
	return len(m.ids), cols, empty
}

// WithMean returns a copy of m with a mean column holding the mean of
// the non-missing values of each row.
func (m *Matrix) WithMean() *Matrix {
	n := m.clone()
	n.mean = make([]float64, len(m.data))
	vals := make([]float64, 0, len(m.keys))
	for i, r := range m.data {
		vals = vals[:0]
		for _, v := range r {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			n.mean[i] = math.NaN()
			continue
		}
		n.mean[i] = stat.Mean(vals, nil)
	}
	n.hasMean = true
	return n
}

// Expressed returns the rows of m with a mean greater than zero. It
// panics if m has no mean column.
func (m *Matrix) Expressed() *Matrix {
	if !m.hasMean {
		panic("report: expressed filter on matrix without mean")
	}
	return m.filter(func(i int) bool { return m.mean[i] > 0 })
}

// filter returns a copy of m holding only the rows for which keep
// returns true.
func (m *Matrix) filter(keep func(i int) bool) *Matrix {
	n := &Matrix{keys: m.keys, hasMean: m.hasMean, hasGene: m.hasGene}
	for i := range m.ids {
		if !keep(i) {
			continue
		}
		n.ids = append(n.ids, m.ids[i])
		n.data = append(n.data, m.data[i])
		if m.hasMean {
			n.mean = append(n.mean, m.mean[i])
		}
		if m.hasGene {
			n.gene = append(n.gene, m.gene[i])
		}
	}
	return n
}

// clone returns a shallow copy of m. Row data is shared since it is
// never mutated.
func (m *Matrix) clone() *Matrix {
	n := *m
	return &n
}

// Labels of the derived columns.
const (
	meanLabel = "mean"
	geneLabel = "gene"
)

// Table returns m as a table with a two-level condition and replicate
// column header and the tracking IDs as the row index. Derived columns
// have an empty replicate header.
func (m *Matrix) Table() Table {
	conds := make([]string, 0, len(m.keys)+2)
	reps := make([]string, 0, len(m.keys)+2)
	for _, k := range m.keys {
		conds = append(conds, k.Condition)
		reps = append(reps, k.Replicate)
	}
	if m.hasMean {
		conds = append(conds, meanLabel)
		reps = append(reps, "")
	}
	if m.hasGene {
		conds = append(conds, geneLabel)
		reps = append(reps, "")
	}

	t := Table{
		Levels:    []string{"condition", "replicate"},
		Header:    [][]string{conds, reps},
		IndexName: "tracking_id",
		Index:     m.ids,
		Rows:      make([][]string, len(m.ids)),
	}
	for i, r := range m.data {
		row := make([]string, 0, len(conds))
		for _, v := range r {
			row = append(row, FormatFloat(v))
		}
		if m.hasMean {
			row = append(row, FormatFloat(m.mean[i]))
		}
		if m.hasGene {
			row = append(row, m.gene[i])
		}
		t.Rows[i] = row
	}
	return t
}
