// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Trailer is the `trailer` keyword, a dictionary, and the whitespace
// around it.
type Trailer struct {
	WS1  []byte
	Dict *DictionaryObject
	WS2  []byte
}

func (t *Trailer) serializeTo(buf *bytes.Buffer) {
	buf.WriteString("trailer")
	buf.Write(t.WS1)
	t.Dict.serializeTo(buf)
	buf.Write(t.WS2)
}

// parseTrailer parses `trailer` whitespace dictionary whitespace.
func (c *cursor) parseTrailer() (*Trailer, error) {
	start := c.pos
	if !c.matchLiteral("trailer") {
		return nil, c.unexpected("trailer")
	}
	ws1 := c.scanWhitespaceAndComments()
	dict, err := c.parseDictionary()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws2 := c.scanWhitespaceAndComments()
	return &Trailer{WS1: ws1, Dict: dict, WS2: ws2}, nil
}
