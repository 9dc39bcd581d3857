// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareReplicate(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want int
	}{
		{x: "0", y: "0", want: 0},
		{x: "0", y: "1", want: -1},
		{x: "2", y: "10", want: -1},
		{x: "10", y: "2", want: 1},
		{x: "1", y: "a", want: -1},
		{x: "a", y: "1", want: 1},
		{x: "a", y: "b", want: -1},
		{x: "1", y: "01", want: 1},
	} {
		assert.Equal(t, test.want, CompareReplicate(test.x, test.y), "compare %q %q", test.x, test.y)
	}
}

func TestByConditionReplicate(t *testing.T) {
	assert.Equal(t, 0, ByConditionReplicate("CAS", "0", "CAS", "0"))
	assert.Equal(t, -1, ByConditionReplicate("CAS", "10", "WT", "0"))
	assert.Equal(t, 1, ByConditionReplicate("WT", "0", "CAS", "10"))
	assert.Equal(t, -1, ByConditionReplicate("CAS", "2", "CAS", "10"))
}

func TestSet(t *testing.T) {
	var s Set
	for _, k := range []string{"gene3", "gene1", "gene2", "gene1"} {
		s.Insert(String(k))
	}
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(String("gene2")))
	assert.False(t, s.Has(String("gene4")))
	assert.Equal(t, []string{"gene1", "gene2", "gene3"}, s.Strings())
	assert.Len(t, s.Keys(), 3)
}
