// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuffdiff

import (
	"io"
	"strings"
)

// statusSuffix marks the per-condition status columns of a gene
// tracking table.
const statusSuffix = "_status"

// GeneTracking is a row of a genes.fpkm_tracking table.
type GeneTracking struct {
	TrackingID    string
	ClassCode     string
	NearestRefID  string
	GeneID        string
	GeneShortName string
	TSSID         string
	Locus         string
	Length        float64
	Coverage      float64

	// FPKM and Status hold the per-condition
	// values keyed by condition name.
	FPKM   map[string]float64
	Status map[string]Status
}

// StatusConditions returns the condition names described by the
// status columns in header. A status column is any column whose name
// contains "_status" and the condition name is the text before it.
func StatusConditions(header []string) []string {
	var conds []string
	for _, h := range header {
		i := strings.Index(h, statusSuffix)
		if i < 0 {
			continue
		}
		conds = append(conds, h[:i])
	}
	return conds
}

// ReadGeneTracking returns the gene tracking records held in the file
// at path, with fields separated by delim.
func ReadGeneTracking(path string, delim rune) ([]GeneTracking, Summary, error) {
	t, err := readTable(path, delim, geneTrackingRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return geneTracking(t)
}

// ParseGeneTracking returns the gene tracking records read from r. The
// name is used for error reporting.
func ParseGeneTracking(r io.Reader, name string, delim rune) ([]GeneTracking, Summary, error) {
	t, err := parseTable(r, name, delim, geneTrackingRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return geneTracking(t)
}

var geneTrackingRequired = []string{"tracking_id", "gene_short_name"}

func geneTracking(t *table) ([]GeneTracking, Summary, error) {
	conds := StatusConditions(t.header)
	statusCol := make(map[string]string, len(conds))
	for _, h := range t.header {
		if i := strings.Index(h, statusSuffix); i >= 0 {
			statusCol[h[:i]] = h
		}
	}

	recs := make([]GeneTracking, len(t.rows))
	for i, row := range t.rows {
		r := GeneTracking{
			TrackingID:    t.field(row, "tracking_id"),
			ClassCode:     t.field(row, "class_code"),
			NearestRefID:  t.field(row, "nearest_ref_id"),
			GeneID:        t.field(row, "gene_id"),
			GeneShortName: t.field(row, "gene_short_name"),
			TSSID:         t.field(row, "tss_id"),
			Locus:         t.field(row, "locus"),
			FPKM:          make(map[string]float64, len(conds)),
			Status:        make(map[string]Status, len(conds)),
		}
		var err error
		r.Length, err = t.float(i, "length")
		if err != nil {
			return nil, Summary{}, err
		}
		r.Coverage, err = t.float(i, "coverage")
		if err != nil {
			return nil, Summary{}, err
		}
		for _, c := range conds {
			r.Status[c] = Status(t.field(row, statusCol[c]))
			if _, ok := t.col[c+"_FPKM"]; !ok {
				continue
			}
			r.FPKM[c], err = t.float(i, c+"_FPKM")
			if err != nil {
				return nil, Summary{}, err
			}
		}
		recs[i] = r
	}
	return recs, t.summary(), nil
}
