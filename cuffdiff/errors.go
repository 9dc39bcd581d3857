// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuffdiff

import "fmt"

// InputFormatError is returned when an input table cannot be opened,
// read or interpreted.
type InputFormatError struct {
	// Path is the file path or name
	// of the input.
	Path string

	// Line is the line of the input
	// where the error was found. It is
	// zero if no line is associated
	// with the error.
	Line int

	Err error
}

func (e *InputFormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("input format error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input format error: %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }
