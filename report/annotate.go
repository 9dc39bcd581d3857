// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "github.com/kortschak/cuffparse/cuffdiff"

// NA is the gene annotation of a row with no matching diff.
const NA = "NA"

// GeneLookup maps tracking IDs to gene names.
type GeneLookup map[string]string

// NewGeneLookup returns a lookup from test ID to gene name for diffs.
// When a test ID appears more than once the first gene is used.
func NewGeneLookup(diffs []cuffdiff.Diff) GeneLookup {
	l := make(GeneLookup, len(diffs))
	for _, d := range diffs {
		if _, ok := l[d.TestID]; ok {
			continue
		}
		l[d.TestID] = d.Gene
	}
	return l
}

// Gene returns the gene name for the tracking ID, or NA if there is
// none.
func (l GeneLookup) Gene(id string) string {
	g, ok := l[id]
	if !ok {
		return NA
	}
	return g
}

// Annotate returns a copy of m with a gene column holding the gene name
// found in lookup for each row's tracking ID, or NA.
func (m *Matrix) Annotate(lookup GeneLookup) *Matrix {
	n := m.clone()
	n.gene = make([]string, len(m.ids))
	for i, id := range m.ids {
		n.gene[i] = lookup.Gene(id)
	}
	n.hasGene = true
	return n
}

// Significant returns the rows of m that have a gene annotation other
// than NA. It panics if m has not been annotated.
func (m *Matrix) Significant() *Matrix {
	if !m.hasGene {
		panic("report: significant filter on unannotated matrix")
	}
	return m.filter(func(i int) bool { return m.gene[i] != NA })
}
