// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWhitespace(t *testing.T) {
	for _, b := range []byte{0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20} {
		assert.True(t, IsWhitespace(b), "byte %#x", b)
	}
	for _, b := range []byte("abc/()") {
		assert.False(t, IsWhitespace(b), "byte %q", b)
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, b := range []byte("()<>[]{}/%") {
		assert.True(t, IsDelimiter(b), "byte %q", b)
	}
	assert.False(t, IsDelimiter('a'))
	assert.False(t, IsDelimiter(' '))
}

func TestIsRegular(t *testing.T) {
	assert.True(t, IsRegular('a'))
	assert.True(t, IsRegular('1'))
	assert.False(t, IsRegular(' '))
	assert.False(t, IsRegular('/'))
}

func TestIsDigitHexOctal(t *testing.T) {
	assert.True(t, IsDigit('5'))
	assert.False(t, IsDigit('a'))
	assert.True(t, IsHexDigit('f'))
	assert.True(t, IsHexDigit('F'))
	assert.True(t, IsHexDigit('9'))
	assert.False(t, IsHexDigit('g'))
	assert.True(t, IsOctalDigit('7'))
	assert.False(t, IsOctalDigit('8'))
}

func TestCursorScanEOL(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  EOLKind
		n     int
	}{
		{"crlf", "\r\nrest", EOLCRLF, 2},
		{"cr", "\rrest", EOLCR, 1},
		{"lf", "\nrest", EOLLF, 1},
		{"none", "rest", EOLNone, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCursor([]byte(tc.input), nil)
			kind := c.scanEOL()
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.n, c.pos)
			assert.Equal(t, tc.input[:tc.n], string(kind.bytes()))
		})
	}
}

func TestScanWhitespaceAndComments(t *testing.T) {
	input := "  % a comment\r\n  obj"
	c := newCursor([]byte(input), nil)
	span := c.scanWhitespaceAndComments()
	assert.Equal(t, "  % a comment\r\n  ", string(span))
	assert.Equal(t, "obj", string(c.input[c.pos:]))
}

func TestScanWhitespaceAndComments_CommentAtEOF(t *testing.T) {
	input := "% trailing comment, no EOL"
	c := newCursor([]byte(input), nil)
	span := c.scanWhitespaceAndComments()
	assert.Equal(t, input, string(span))
	assert.True(t, c.atEnd())
}

func TestScanNonEmptyWhitespaceAndComments(t *testing.T) {
	c := newCursor([]byte("no-leading-ws"), nil)
	_, err := c.scanNonEmptyWhitespaceAndComments()
	require.Error(t, err)
	assert.Equal(t, 0, c.pos)

	c2 := newCursor([]byte(" x"), nil)
	span, err := c2.scanNonEmptyWhitespaceAndComments()
	require.NoError(t, err)
	assert.Equal(t, " ", string(span))
}
