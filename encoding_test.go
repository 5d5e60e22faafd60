// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeJSON_RoundTrip checks that decoding the structural encoding
// of a parsed tree serializes identically to the original tree.
func TestEncodeJSON_RoundTrip(t *testing.T) {
	in := "%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Kids [2 0 R 3 0 R] /Count 2 >>\nendobj\n" +
		"2 0 obj\n(a literal (nested) string)\nendobj\n" +
		"xref\n0 4\n" +
		"0000000000 65535 f \n0000000009 00000 n \n0000000100 00000 n \n0000000200 00000 n \n" +
		"trailer\n<< /Size 4 /Root 1 0 R >>\n" +
		"startxref\n0\n%%EOF\n"

	f, remaining, err := Parse([]byte(in), nil)
	require.NoError(t, err)
	require.Empty(t, remaining)

	data, err := EncodeJSON(f)
	require.NoError(t, err)

	decoded, err := DecodeJSON(data)
	require.NoError(t, err)

	assert.Equal(t, f.Bytes(), decoded.Bytes())
	assert.Equal(t, in, string(decoded.Bytes()))
}

func TestEncodeJSON_PreservesNumericDigits(t *testing.T) {
	f, _, err := Parse([]byte(
		"%PDF-1.4\n1 0 obj\n-0042\nendobj\nxref\n0 1\n0000000000 65535 f \n"+
			"trailer\n<< /Size 1 >>\nstartxref\n0\n%%EOF\n"), nil)
	require.NoError(t, err)

	data, err := EncodeJSON(f)
	require.NoError(t, err)
	decoded, err := DecodeJSON(data)
	require.NoError(t, err)

	def := decoded.Blocks[0].Body.Parts[0].Def
	i, ok := def.Obj.(*Integer)
	require.True(t, ok)
	assert.Equal(t, SignMinus, i.Sign)
	assert.Equal(t, "0042", string(i.Digits))
}

func TestDecodeJSON_InvalidKind(t *testing.T) {
	_, err := decodeObject(objEnvelope{Kind: "bogus"})
	require.Error(t, err)
}

func TestObjectOrReference_JSONRoundTrip(t *testing.T) {
	c := newCursor([]byte("1 0 R"), nil)
	v, err := c.parseObjectOrReference()
	require.NoError(t, err)

	data, err := v.MarshalJSON()
	require.NoError(t, err)

	var v2 ObjectOrReference
	require.NoError(t, v2.UnmarshalJSON(data))
	require.NotNil(t, v2.Reference)
	assert.Equal(t, "1", string(v2.Reference.ObjNum.Digits))
}
