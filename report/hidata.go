// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/ahmetb/go-linq"

	"github.com/kortschak/cuffparse/cuffdiff"
)

// HIDATA returns a table with a column for each of the given conditions
// listing the short names of genes with HIDATA status in that condition.
// Each column is deduplicated, sorted and packed from the first row
// independently of the other columns, so a row does not describe a single
// gene. Short columns are padded with empty cells. Genes without a short
// name are omitted.
//
// If no gene has HIDATA status in any condition, the returned table has
// no rows.
func HIDATA(recs []cuffdiff.GeneTracking, conditions []string) Table {
	cols := make([][]string, len(conditions))
	var n int
	for i, cond := range conditions {
		linq.From(recs).WhereT(func(r cuffdiff.GeneTracking) bool {
			return r.Status[cond] == cuffdiff.HIData && r.GeneShortName != ""
		}).SelectT(func(r cuffdiff.GeneTracking) string {
			return r.GeneShortName
		}).Distinct().OrderByT(func(name string) string {
			return name
		}).ToSlice(&cols[i])
		if len(cols[i]) > n {
			n = len(cols[i])
		}
	}

	header := make([]string, len(conditions))
	copy(header, conditions)
	t := Table{Header: [][]string{header}}
	if n == 0 {
		return t
	}
	t.Rows = make([][]string, n)
	for j := range t.Rows {
		row := make([]string, len(conditions))
		for i, c := range cols {
			if j < len(c) {
				row[i] = c[j]
			}
		}
		t.Rows[j] = row
	}
	return t
}
