// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// HexadecimalString is a PDF string delimited by < and >, captured as the
// opaque raw bytes between the delimiters (including any interior
// whitespace).
type HexadecimalString struct {
	Raw []byte
}

func (s *HexadecimalString) isObject()       {}
func (s *HexadecimalString) isStringObject() {}

func (s *HexadecimalString) serializeTo(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.Write(s.Raw)
	buf.WriteByte('>')
}

// parseHexString parses a hex string starting at '<' (not followed by a
// second '<', which is a dictionary instead).
func (c *cursor) parseHexString() (*HexadecimalString, error) {
	start := c.pos
	if !c.matchLiteral("<") {
		return nil, c.unexpected("<")
	}
	rawStart := c.pos
	for !c.atEnd() && (IsHexDigit(c.input[c.pos]) || IsWhitespace(c.input[c.pos])) {
		c.pos++
	}
	raw := c.input[rawStart:c.pos]
	if !c.matchLiteral(">") {
		c.pos = start
		return nil, c.incomplete("unterminated hexadecimal string")
	}
	return &HexadecimalString{Raw: raw}, nil
}
