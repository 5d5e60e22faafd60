// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// LiteralStringPart is one fragment of a LiteralString: either a run of
// regular bytes copied verbatim, or the payload of a `\`-escape (the
// bytes matched after the backslash).
type LiteralStringPart struct {
	Escaped bool
	Bytes   []byte
}

func (p LiteralStringPart) serializeTo(buf *bytes.Buffer) {
	if p.Escaped {
		buf.WriteByte('\\')
	}
	buf.Write(p.Bytes)
}

// LiteralString is a PDF string delimited by ( and ), with unescaped
// parentheses nested to arbitrary depth: the concatenation of all
// Regular-equivalent bytes is always parenthesis-balanced.
type LiteralString struct {
	Parts []LiteralStringPart
}

func (s *LiteralString) isObject()       {}
func (s *LiteralString) isStringObject() {}

func (s *LiteralString) serializeTo(buf *bytes.Buffer) {
	buf.WriteByte('(')
	for _, p := range s.Parts {
		p.serializeTo(buf)
	}
	buf.WriteByte(')')
}

// parseLiteralString parses a balanced-parenthesis literal string
// starting at '('.
func (c *cursor) parseLiteralString() (*LiteralString, error) {
	start := c.pos
	if !c.matchLiteral("(") {
		return nil, c.unexpected("(")
	}
	c.trace.Enter("literal-string")
	defer c.trace.Leave()

	depth := 1
	regularStart := c.pos
	var parts []LiteralStringPart

	for {
		if c.atEnd() {
			c.pos = start
			return nil, c.incomplete("unterminated literal string")
		}
		b := c.input[c.pos]
		switch b {
		case '(':
			depth++
			c.pos++
		case ')':
			depth--
			if depth == 0 {
				if c.pos > regularStart {
					parts = append(parts, LiteralStringPart{Bytes: c.input[regularStart:c.pos]})
				}
				c.pos++
				return &LiteralString{Parts: parts}, nil
			}
			c.pos++
		case '\\':
			if c.pos > regularStart {
				parts = append(parts, LiteralStringPart{Bytes: c.input[regularStart:c.pos]})
			}
			c.pos++ // consume backslash
			escape := c.parseEscape()
			parts = append(parts, LiteralStringPart{Escaped: true, Bytes: escape})
			regularStart = c.pos
		default:
			c.pos++
		}
	}
}

// parseEscape parses the escape sequence immediately following a `\`
// inside a literal string, trying each of the four forms in order. It
// never fails: the fourth form (empty) matches anything else, leaving the
// `\` itself as the marker and the following byte as ordinary content.
func (c *cursor) parseEscape() []byte {
	if !c.atEnd() {
		switch c.input[c.pos] {
		case 'n', 'r', 't', 'b', 'f', '(', ')', '\\':
			b := c.input[c.pos]
			c.pos++
			return []byte{b}
		}
	}
	if eol := c.scanEOL(); eol != EOLNone {
		return eol.bytes()
	}
	start := c.pos
	for i := 0; i < 3 && !c.atEnd() && IsOctalDigit(c.input[c.pos]); i++ {
		c.pos++
	}
	if c.pos > start {
		return c.input[start:c.pos]
	}
	return nil
}
