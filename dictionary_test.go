// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionary_RoundTrip(t *testing.T) {
	cases := []string{
		"<<>>",
		"<< /Type /Catalog >>",
		"<</Type/Catalog>>",
		"<< /Size 12 /Root 1 0 R /Info 2 0 R >>",
		"<< /Nested << /K /V >> >>",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			c := newCursor([]byte(in), nil)
			d, err := c.parseDictionary()
			require.NoError(t, err)
			assert.Equal(t, in, serialized(d))
		})
	}
}

func TestDictionaryObject_Lookup(t *testing.T) {
	c := newCursor([]byte("<< /Type /Catalog /Size 12 >>"), nil)
	d, err := c.parseDictionary()
	require.NoError(t, err)

	v, ok := d.Lookup("Type")
	require.True(t, ok)
	n, ok := v.Obj.(*NameObject)
	require.True(t, ok)
	assert.Equal(t, "Catalog", string(n.Value()))

	_, ok = d.Lookup("Missing")
	assert.False(t, ok)
}

func TestParseDictionary_Unterminated(t *testing.T) {
	c := newCursor([]byte("<< /Type /Catalog"), nil)
	_, err := c.parseDictionary()
	require.Error(t, err)
}
