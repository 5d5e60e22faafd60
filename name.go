// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// NameChar is one byte of a NameObject: either a regular byte, or a
// `#`-escaped pair (the two raw bytes following `#`, not necessarily
// valid hex).
type NameChar struct {
	NumberSignPrefixed bool
	B, B2              byte
}

func (n NameChar) serializeTo(buf *bytes.Buffer) {
	if n.NumberSignPrefixed {
		buf.WriteByte('#')
		buf.WriteByte(n.B)
		buf.WriteByte(n.B2)
		return
	}
	buf.WriteByte(n.B)
}

// NameObject is a PDF name, the ordered sequence of characters following
// the leading `/`. This package does not restrict names to printable
// ASCII: real-world PDFs contain non-ASCII bytes in names.
type NameObject struct {
	Chars []NameChar
}

func (n *NameObject) isObject() {}

func (n *NameObject) serializeTo(buf *bytes.Buffer) {
	buf.WriteByte('/')
	for _, ch := range n.Chars {
		ch.serializeTo(buf)
	}
}

// Value decodes the name to its byte value, resolving `#xy` escapes.
// This is a convenience for callers; it is not consulted by the parser
// or serializer, which operate purely on NameChar.
func (n *NameObject) Value() []byte {
	out := make([]byte, 0, len(n.Chars))
	for _, ch := range n.Chars {
		if ch.NumberSignPrefixed {
			hi, _ := hexNibble(ch.B)
			lo, _ := hexNibble(ch.B2)
			out = append(out, hi<<4|lo)
			continue
		}
		out = append(out, ch.B)
	}
	return out
}

func hexNibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseName parses `/` followed by a maximal run of non-whitespace,
// non-delimiter bytes, recognizing `#`-escapes within that run.
func (c *cursor) parseName() (*NameObject, error) {
	if !c.matchLiteral("/") {
		return nil, c.unexpected("/")
	}
	var chars []NameChar
	for !c.atEnd() && IsRegular(c.input[c.pos]) {
		if c.input[c.pos] == '#' {
			c.pos++
			var b1, b2 byte
			if !c.atEnd() {
				b1 = c.input[c.pos]
				c.pos++
			}
			if !c.atEnd() {
				b2 = c.input[c.pos]
				c.pos++
			}
			chars = append(chars, NameChar{NumberSignPrefixed: true, B: b1, B2: b2})
			continue
		}
		chars = append(chars, NameChar{B: c.input[c.pos]})
		c.pos++
	}
	return &NameObject{Chars: chars}, nil
}
