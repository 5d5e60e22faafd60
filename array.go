// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// ArrayPart is one element of an ArrayObject: either a value, or a
// non-empty whitespace-and-comments span captured verbatim between
// elements.
type ArrayPart struct {
	IsWhitespace bool
	WS           []byte
	Value        ObjectOrReference
}

func (p ArrayPart) serializeTo(buf *bytes.Buffer) {
	if p.IsWhitespace {
		buf.Write(p.WS)
		return
	}
	p.Value.serializeTo(buf)
}

// ArrayObject is a PDF array.
type ArrayObject struct {
	Parts []ArrayPart
}

func (a *ArrayObject) isObject() {}

func (a *ArrayObject) serializeTo(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for _, p := range a.Parts {
		p.serializeTo(buf)
	}
	buf.WriteByte(']')
}

// parseArray parses `[` part* `]`, where each part is a value or a
// non-empty whitespace-and-comments span.
func (c *cursor) parseArray() (*ArrayObject, error) {
	start := c.pos
	if !c.matchLiteral("[") {
		return nil, c.unexpected("[")
	}
	c.trace.Enter("array")
	defer c.trace.Leave()

	var parts []ArrayPart
	for {
		if c.atEnd() {
			c.pos = start
			return nil, c.incomplete("unterminated array")
		}
		if c.peekIs(']') {
			c.pos++
			return &ArrayObject{Parts: parts}, nil
		}
		if ws, err := c.scanNonEmptyWhitespaceAndComments(); err == nil {
			parts = append(parts, ArrayPart{IsWhitespace: true, WS: ws})
			continue
		}
		val, err := c.parseObjectOrReference()
		if err != nil {
			c.pos = start
			return nil, err
		}
		parts = append(parts, ArrayPart{Value: val})
	}
}
