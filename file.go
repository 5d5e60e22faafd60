// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"

	"github.com/sassoftware/pdf-roundtrip/logger"
)

// PdfFile is the root of the parse tree: leading header bytes, one or
// more BodyCrossrefTrailer blocks (one per incremental update), and the
// trailing bytes after the final %%EOF.
//
// Because `%PDF-x.y` and any binary-marker comment line are themselves
// syntactically PDF comments, Header is simply whatever leading
// whitespace-and-comments span precedes the first BCT; this package does
// not validate the PDF version it names (that belongs to an external
// collaborator, not this core).
type PdfFile struct {
	Header  []byte
	Blocks  []*BodyCrossrefTrailer
	PostEOF []byte

	// Flags records every non-conformant-but-accepted construct the
	// parser encountered, in document order.
	Flags []Flag
}

func (f *PdfFile) serializeTo(buf *bytes.Buffer) {
	buf.Write(f.Header)
	for _, b := range f.Blocks {
		b.serializeTo(buf)
	}
	buf.Write(f.PostEOF)
}

// Bytes serializes f and returns the result, equal byte-for-byte to the
// input Parse produced it from.
func (f *PdfFile) Bytes() []byte {
	var buf bytes.Buffer
	Serialize(f, &buf)
	return buf.Bytes()
}

// Serialize appends f's exact byte representation to sink.
func Serialize(f *PdfFile, sink *bytes.Buffer) {
	f.serializeTo(sink)
}

// Parse parses a PDF file from input, returning the tree and whatever
// bytes were not consumed. For any input accepted by Parse, the returned
// tree's Bytes() equals the consumed prefix of input exactly; remaining
// is empty unless a bug in this package fails to
// absorb trailing bytes into PostEOF.
//
// cfg may be nil, in which case NewDefaultConfig is used.
func Parse(input []byte, cfg *Config) (*PdfFile, []byte, error) {
	c := newCursor(input, cfg)
	logger.Debug("parsing PDF file", "input_len", len(input))

	header := c.scanWhitespaceAndComments()

	var blocks []*BodyCrossrefTrailer
	for {
		start := c.pos
		block, err := c.parseBodyCrossrefTrailer()
		if err != nil {
			c.pos = start
			break
		}
		blocks = append(blocks, block)
	}
	if len(blocks) == 0 {
		logger.Error("no body/cross-reference/trailer block found")
		return nil, input[c.pos:], c.unexpected("body, cross-reference table, or startxref block")
	}

	postEOF := c.input[c.pos:]
	if bytes.Contains(postEOF, []byte("%%EOF")) {
		logger.Error("content found after final %%EOF", "offset", c.pos)
		return nil, input[c.pos:], &ParseError{Offset: c.pos, Kind: PostEOFContent}
	}
	c.pos = len(c.input)

	return &PdfFile{
		Header:  header,
		Blocks:  blocks,
		PostEOF: postEOF,
		Flags:   c.flags,
	}, input[c.pos:], nil
}
