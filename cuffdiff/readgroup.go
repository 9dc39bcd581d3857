// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuffdiff

import (
	"fmt"
	"io"
)

// ReadGroup is a row of a genes.read_group_tracking table, holding the
// quantification of a single gene in a single replicate.
type ReadGroup struct {
	TrackingID string
	Condition  string
	Replicate  string

	RawFrags            float64
	InternalScaledFrags float64
	ExternalScaledFrags float64
	FPKM                float64
	EffectiveLength     float64

	Status Status
}

// ReadReadGroups returns the read group records held in the file at
// path, with fields separated by delim.
func ReadReadGroups(path string, delim rune) ([]ReadGroup, Summary, error) {
	t, err := readTable(path, delim, readGroupRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return readGroups(t)
}

// ParseReadGroups returns the read group records read from r. The name
// is used for error reporting.
func ParseReadGroups(r io.Reader, name string, delim rune) ([]ReadGroup, Summary, error) {
	t, err := parseTable(r, name, delim, readGroupRequired...)
	if err != nil {
		return nil, Summary{}, err
	}
	return readGroups(t)
}

var readGroupRequired = []string{"tracking_id", "condition", "replicate", "FPKM", "status"}

func readGroups(t *table) ([]ReadGroup, Summary, error) {
	recs := make([]ReadGroup, len(t.rows))
	for i, row := range t.rows {
		r := ReadGroup{
			TrackingID: t.field(row, "tracking_id"),
			Condition:  t.field(row, "condition"),
			Replicate:  t.field(row, "replicate"),
			Status:     Status(t.field(row, "status")),
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{name: "raw_frags", dst: &r.RawFrags},
			{name: "internal_scaled_frags", dst: &r.InternalScaledFrags},
			{name: "external_scaled_frags", dst: &r.ExternalScaledFrags},
			{name: "FPKM", dst: &r.FPKM},
			{name: "effective_length", dst: &r.EffectiveLength},
		} {
			var err error
			*f.dst, err = t.float(i, f.name)
			if err != nil {
				return nil, Summary{}, err
			}
		}
		if r.FPKM < 0 {
			return nil, Summary{}, &InputFormatError{Path: t.name, Line: lineOf(i), Err: fmt.Errorf("negative FPKM: %v", r.FPKM)}
		}
		recs[i] = r
	}
	return recs, t.summary(), nil
}
