// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "log"

// Shaper is a table-like value with a size and a count of empty cells.
type Shaper interface {
	Shape() (rows, cols, empty int)
}

// Info logs message followed by the number of rows, columns and empty
// cells in s.
func Info(logger *log.Logger, message string, s Shaper) {
	rows, cols, empty := s.Shape()
	logger.Printf("\n%s", message)
	logger.Printf("Rows: %d", rows)
	logger.Printf("Columns: %d", cols)
	logger.Printf("Empty cells: %d", empty)
}
