// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package roundtrip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdf "github.com/sassoftware/pdf-roundtrip"
)

func newTestVerifier(t *testing.T) *Verifier {
	cfg := NewDefaultConfig()
	cfg.FileTimeout = time.Second
	v, err := NewVerifier(cfg)
	require.NoError(t, err)
	return v
}

const minimalPDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog >>\nendobj\n" +
	"xref\n0 2\n0000000000 00001 f \n0000000009 00000 n \n" +
	"trailer\n<< /Size 2 /Root 1 0 R >>\n" +
	"startxref\n9\n%%EOF"

func TestVerifier_VerifyAll_OK(t *testing.T) {
	v := newTestVerifier(t)
	files := []File{
		{Name: "a.pdf", Data: []byte(minimalPDF)},
		{Name: "b.pdf", Data: []byte(minimalPDF)},
	}
	results, err := v.VerifyAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.OK, "file %s: %v", r.Name, r.Err)
		assert.Equal(t, -1, r.MismatchOffset)
	}
}

func TestVerifier_VerifyAll_ParseFailure(t *testing.T) {
	v := newTestVerifier(t)
	files := []File{
		{Name: "garbage.pdf", Data: []byte("not a pdf at all")},
	}
	results, err := v.VerifyAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK)
	assert.Error(t, results[0].Err)
}

func TestVerifier_VerifyAll_PreservesOrder(t *testing.T) {
	v := newTestVerifier(t)
	files := []File{
		{Name: "first.pdf", Data: []byte(minimalPDF)},
		{Name: "second.pdf", Data: []byte("broken")},
		{Name: "third.pdf", Data: []byte(minimalPDF)},
	}
	results, err := v.VerifyAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "first.pdf", results[0].Name)
	assert.Equal(t, "second.pdf", results[1].Name)
	assert.Equal(t, "third.pdf", results[2].Name)
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.True(t, results[2].OK)
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.MaxConcurrentFiles = 0
	assert.Error(t, cfg.Validate())
}

func TestFirstMismatch(t *testing.T) {
	assert.Equal(t, -1, firstMismatch([]byte("abc"), []byte("abc")))
	assert.Equal(t, 1, firstMismatch([]byte("abc"), []byte("axc")))
	assert.Equal(t, 2, firstMismatch([]byte("ab"), []byte("abc")))
}

// sanity check that pdf.ParsingMode values are usable from this package.
var _ = pdf.Strict
