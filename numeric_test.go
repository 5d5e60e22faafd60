// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serialized(o interface{ serializeTo(*bytes.Buffer) }) string {
	var buf bytes.Buffer
	o.serializeTo(&buf)
	return buf.String()
}

func TestParseNumeric_Integer(t *testing.T) {
	cases := []string{"123", "+123", "-123", "007", "0"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			c := newCursor([]byte(in), nil)
			n, err := c.parseNumeric()
			require.NoError(t, err)
			_, ok := n.(*Integer)
			assert.True(t, ok, "expected *Integer, got %T", n)
			assert.Equal(t, in, serialized(n))
			assert.True(t, c.atEnd())
		})
	}
}

func TestParseNumeric_Real(t *testing.T) {
	cases := []string{"34.5", "-3.62", "4.", ".002", "-.002", "+.5", "0.0"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			c := newCursor([]byte(in), nil)
			n, err := c.parseNumeric()
			require.NoError(t, err)
			_, ok := n.(*Real)
			assert.True(t, ok, "expected *Real, got %T", n)
			assert.Equal(t, in, serialized(n))
		})
	}
}

func TestParseNumeric_BareDotFails(t *testing.T) {
	c := newCursor([]byte("."), nil)
	_, err := c.parseNumeric()
	require.Error(t, err)
}

func TestParseNumeric_Empty(t *testing.T) {
	c := newCursor([]byte(""), nil)
	_, err := c.parseNumeric()
	require.Error(t, err)
}

func TestParseDigits(t *testing.T) {
	c := newCursor([]byte("12a"), nil)
	d, err := c.parseDigits()
	require.NoError(t, err)
	assert.Equal(t, "12", string(d))
	assert.Equal(t, 2, c.pos)

	c2 := newCursor([]byte("a"), nil)
	_, err = c2.parseDigits()
	require.Error(t, err)
}

func TestParseSign(t *testing.T) {
	c := newCursor([]byte("+1"), nil)
	assert.Equal(t, SignPlus, c.parseSign())
	c2 := newCursor([]byte("-1"), nil)
	assert.Equal(t, SignMinus, c2.parseSign())
	c3 := newCursor([]byte("1"), nil)
	assert.Equal(t, SignNone, c3.parseSign())
}
