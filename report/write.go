// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
)

// WriteOptions specifies how a table is written.
type WriteOptions struct {
	// Delim is the field separator.
	Delim rune

	// Index specifies that the row index
	// is written as the first column.
	Index bool

	// Header specifies that column header
	// rows are written.
	Header bool

	// Log, if not nil, receives a message
	// naming the written file.
	Log *log.Logger
}

// Write writes t to the file at path. Any error during writing is
// returned as an *OutputWriteError.
func Write(path string, t Table, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	err = Encode(f, t, opts)
	if err != nil {
		f.Close()
		return &OutputWriteError{Path: path, Err: err}
	}
	err = f.Close()
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if opts.Log != nil {
		opts.Log.Printf("Output file: %s", path)
	}
	return nil
}

// Encode writes t to w.
//
// When both the header and the index are written for a table with named
// header levels, each header row is preceded by its level name and the
// header is followed by a row holding only the index name.
func Encode(w io.Writer, t Table, opts WriteOptions) error {
	if opts.Index && t.Index != nil && len(t.Index) != len(t.Rows) {
		return fmt.Errorf("index length mismatch: %d labels for %d rows", len(t.Index), len(t.Rows))
	}

	c := csv.NewWriter(w)
	if opts.Delim != 0 {
		c.Comma = opts.Delim
	}

	index := opts.Index && t.Index != nil
	if opts.Header {
		switch {
		case !index:
			for _, h := range t.Header {
				err := c.Write(h)
				if err != nil {
					return err
				}
			}
		case len(t.Levels) == 0:
			for _, h := range t.Header {
				err := c.Write(append([]string{t.IndexName}, h...))
				if err != nil {
					return err
				}
			}
		default:
			for i, h := range t.Header {
				var level string
				if i < len(t.Levels) {
					level = t.Levels[i]
				}
				err := c.Write(append([]string{level}, h...))
				if err != nil {
					return err
				}
			}
			err := c.Write(append([]string{t.IndexName}, make([]string, t.width())...))
			if err != nil {
				return err
			}
		}
	}

	for i, r := range t.Rows {
		if index {
			r = append([]string{t.Index[i]}, r...)
		}
		err := c.Write(r)
		if err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}

// Read reads a table from r with fields separated by delim. If header is
// true the first row is read as a single-level column header. If index
// is true the first column is read as the row index.
func Read(r io.Reader, delim rune, header, index bool) (Table, error) {
	c := csv.NewReader(r)
	c.Comma = delim
	c.FieldsPerRecord = -1

	recs, err := c.ReadAll()
	if err != nil {
		return Table{}, err
	}
	var t Table
	if header && len(recs) != 0 {
		h := recs[0]
		recs = recs[1:]
		if index && len(h) != 0 {
			t.IndexName = h[0]
			h = h[1:]
		}
		t.Header = [][]string{h}
	}
	for _, rec := range recs {
		if index && len(rec) != 0 {
			t.Index = append(t.Index, rec[0])
			rec = rec[1:]
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
