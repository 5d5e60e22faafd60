// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName_RoundTrip(t *testing.T) {
	cases := []string{"/Type", "/Name1", "/A;Name_With-Various***Characters?", "/1.2", "/", "/#20space"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			c := newCursor([]byte(in), nil)
			n, err := c.parseName()
			require.NoError(t, err)
			assert.Equal(t, in, serialized(n))
		})
	}
}

func TestParseName_StopsAtDelimiter(t *testing.T) {
	c := newCursor([]byte("/Foo/Bar"), nil)
	n, err := c.parseName()
	require.NoError(t, err)
	assert.Equal(t, "/Foo", serialized(n))
	assert.Equal(t, "/Bar", string(c.input[c.pos:]))
}

func TestNameObject_Value(t *testing.T) {
	c := newCursor([]byte("/A#20B"), nil)
	n, err := c.parseName()
	require.NoError(t, err)
	assert.Equal(t, []byte("A B"), n.Value())
}

func TestParseName_MissingSlash(t *testing.T) {
	c := newCursor([]byte("NoSlash"), nil)
	_, err := c.parseName()
	require.Error(t, err)
}
