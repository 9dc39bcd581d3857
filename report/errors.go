// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "fmt"

// FormatError is returned when a table cannot be formatted because it
// does not have the expected structure.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// OutputWriteError is returned when a table cannot be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("output write error: %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
