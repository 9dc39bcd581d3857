// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/cuffparse/cuffdiff"
)

func rg(id, cond, rep string, fpkm float64, status cuffdiff.Status) cuffdiff.ReadGroup {
	return cuffdiff.ReadGroup{TrackingID: id, Condition: cond, Replicate: rep, FPKM: fpkm, Status: status}
}

func TestPivotTwoByTwo(t *testing.T) {
	m := Pivot([]cuffdiff.ReadGroup{
		rg("G1", "CAS", "0", 1, cuffdiff.OK),
		rg("G1", "CAS", "1", 2, cuffdiff.OK),
		rg("G1", "WT", "0", 3, cuffdiff.OK),
		rg("G1", "WT", "1", 4, cuffdiff.OK),
	}).WithMean()

	require.Equal(t, []string{"G1"}, m.IDs())
	assert.Equal(t, []Key{{"CAS", "0"}, {"CAS", "1"}, {"WT", "0"}, {"WT", "1"}}, m.Keys())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Row(0))
	assert.Equal(t, []float64{2.5}, m.Means())

	e := m.Expressed()
	assert.Equal(t, 1, e.Rows())
	assert.Equal(t, []float64{2.5}, e.Means())
}

func TestPivotExcludesUnusable(t *testing.T) {
	m := Pivot([]cuffdiff.ReadGroup{
		rg("G1", "CAS", "0", 1, cuffdiff.OK),
		rg("G1", "CAS", "1", 100, cuffdiff.Fail),
		rg("G1", "WT", "0", 3, cuffdiff.LowData),
		rg("G1", "WT", "1", 200, cuffdiff.HIData),
		rg("G2", "CAS", "0", 50, cuffdiff.Fail),
		rg("G3", "CAS", "0", 60, cuffdiff.HIData),
		rg("G4", "WT", "1", math.NaN(), cuffdiff.OK),
	}).WithMean()

	// Replicate 1 has no usable values in either condition.
	assert.Equal(t, []string{"G1"}, m.IDs())
	assert.Equal(t, []Key{{"CAS", "0"}, {"WT", "0"}}, m.Keys())
	assert.Equal(t, []float64{1, 3}, m.Row(0))
	assert.Equal(t, []float64{2}, m.Means())
	for _, v := range m.Row(0) {
		assert.NotEqual(t, 100.0, v)
		assert.NotEqual(t, 200.0, v)
	}
}

func TestPivotMissingCells(t *testing.T) {
	m := Pivot([]cuffdiff.ReadGroup{
		rg("G2", "WT", "1", 6, cuffdiff.OK),
		rg("G1", "CAS", "0", 2, cuffdiff.OK),
		rg("G1", "WT", "1", 4, cuffdiff.OK),
		rg("G2", "CAS", "1", 0, cuffdiff.OK),
		rg("G3", "CAS", "0", 0, cuffdiff.OK),
	}).WithMean()

	assert.Equal(t, []string{"G1", "G2", "G3"}, m.IDs())
	// (WT, 0) is in the cross product but has no values.
	assert.Equal(t, []Key{{"CAS", "0"}, {"CAS", "1"}, {"WT", "1"}}, m.Keys())

	// Missing cells are excluded from the mean.
	assert.Equal(t, []float64{3, 3, 0}, m.Means())

	rows, cols, empty := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 4, empty)

	e := m.Expressed()
	assert.Equal(t, []string{"G1", "G2"}, e.IDs())
	for i, mean := range e.Means() {
		assert.Greater(t, mean, 0.0)
		var sum float64
		var n int
		for _, v := range e.Row(i) {
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		assert.Equal(t, sum/float64(n), mean)
	}
}

func TestPivotOrderAndDuplicates(t *testing.T) {
	m := Pivot([]cuffdiff.ReadGroup{
		rg("G1", "WT", "10", 1, cuffdiff.OK),
		rg("G1", "WT", "2", 2, cuffdiff.OK),
		rg("G1", "CAS", "2", 3, cuffdiff.OK),
		rg("G1", "CAS", "2", 5, cuffdiff.OK),
	})

	assert.Equal(t, []Key{{"CAS", "2"}, {"WT", "2"}, {"WT", "10"}}, m.Keys())
	assert.Equal(t, []float64{4, 2, 1}, m.Row(0))
	assert.False(t, m.HasMean())
	assert.Panics(t, func() { m.Expressed() })
}

func TestPivotEmpty(t *testing.T) {
	m := Pivot(nil).WithMean().Expressed()
	assert.Equal(t, 0, m.Rows())
	assert.Empty(t, m.Keys())
	tab := m.Table()
	assert.Empty(t, tab.Rows)
	assert.Equal(t, [][]string{{"mean"}, {""}}, tab.Header)
}

func TestMatrixTable(t *testing.T) {
	m := Pivot([]cuffdiff.ReadGroup{
		rg("G1", "CAS", "0", 1, cuffdiff.OK),
		rg("G1", "WT", "0", 2, cuffdiff.OK),
		rg("G2", "WT", "0", 0.5, cuffdiff.OK),
	}).WithMean().Annotate(GeneLookup{"G1": "Abc1"})

	tab := m.Table()
	assert.Equal(t, []string{"condition", "replicate"}, tab.Levels)
	assert.Equal(t, [][]string{
		{"CAS", "WT", "mean", "gene"},
		{"0", "0", "", ""},
	}, tab.Header)
	assert.Equal(t, "tracking_id", tab.IndexName)
	assert.Equal(t, []string{"G1", "G2"}, tab.Index)
	assert.Equal(t, [][]string{
		{"1.0", "2.0", "1.5", "Abc1"},
		{"", "0.5", "0.5", NA},
	}, tab.Rows)
}

func TestAnnotate(t *testing.T) {
	diffs := []cuffdiff.Diff{
		{TestID: "G1", Gene: "Abc1", Significant: true},
		{TestID: "G3", Gene: "Ghi3", Significant: true},
		{TestID: "G1", Gene: "Later", Significant: true},
	}
	lookup := NewGeneLookup(diffs)
	assert.Equal(t, "Abc1", lookup.Gene("G1"))
	assert.Equal(t, NA, lookup.Gene("G2"))

	m := Pivot([]cuffdiff.ReadGroup{
		rg("G1", "CAS", "0", 1, cuffdiff.OK),
		rg("G2", "CAS", "0", 2, cuffdiff.OK),
		rg("G3", "CAS", "0", 3, cuffdiff.OK),
	}).WithMean().Expressed()
	assert.False(t, m.HasGene())
	assert.Panics(t, func() { m.Significant() })

	a := m.Annotate(lookup)
	assert.Equal(t, []string{"Abc1", NA, "Ghi3"}, a.Genes())
	assert.Nil(t, m.Genes(), "annotation mutated its receiver")

	s := a.Significant()
	assert.Equal(t, []string{"G1", "G3"}, s.IDs())
	assert.Equal(t, []string{"Abc1", "Ghi3"}, s.Genes())
	assert.Equal(t, []float64{1, 3}, s.Means())
	for i, id := range s.IDs() {
		assert.NotEqual(t, NA, s.Genes()[i])
		var found bool
		for _, d := range diffs {
			if d.TestID == id && d.Significant {
				found = true
				break
			}
		}
		assert.True(t, found, "no significant diff for %s", id)
	}
}
