// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// StartxrefEofBlock is the `startxref` pointer and the `%%EOF` marker
// that close out a BCT. The Offset is opaque: this package never
// verifies it against the cross-reference table it names.
type StartxrefEofBlock struct {
	WSAfterStartxref []byte
	Offset           *Integer
	EOLBytes         []byte
}

func (s *StartxrefEofBlock) serializeTo(buf *bytes.Buffer) {
	buf.WriteString("startxref")
	buf.Write(s.WSAfterStartxref)
	s.Offset.serializeTo(buf)
	buf.Write(s.EOLBytes)
	buf.WriteString("%%EOF")
}

// parseStartxrefEofBlock parses `startxref` whitespace offset EOL-run
// `%%EOF`. The EOL run is a non-empty run of whitespace bytes only; it is
// not scanned for comments, since `%%EOF` itself begins with `%`.
func (c *cursor) parseStartxrefEofBlock() (*StartxrefEofBlock, error) {
	start := c.pos
	if !c.matchLiteral("startxref") {
		return nil, c.unexpected("startxref")
	}
	ws := c.scanWhitespaceAndComments()
	offset, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return nil, err
	}
	eolStart := c.pos
	for !c.atEnd() && IsWhitespace(c.input[c.pos]) {
		c.pos++
	}
	if c.pos == eolStart {
		c.pos = start
		return nil, c.unexpected("end of line before %%EOF")
	}
	eolRun := c.input[eolStart:c.pos]
	if !c.matchLiteral("%%EOF") {
		c.pos = start
		return nil, c.unexpected("%%EOF")
	}
	return &StartxrefEofBlock{WSAfterStartxref: ws, Offset: offset, EOLBytes: eolRun}, nil
}
