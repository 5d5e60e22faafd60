// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"
	"strconv"
)

// CrossRefEntry is one fixed 20-byte cross-reference record: 10 decimal
// digits, a space, 5 decimal digits, a space, `n` or `f`, and 2 bytes of
// EOL stored verbatim (every entry serializes to
// exactly 20 bytes).
type CrossRefEntry struct {
	Offset []byte // 10 digits
	Gen    []byte // 5 digits
	Kind   byte   // 'n' (in-use) or 'f' (free)
	EOL    []byte // 2 bytes
}

func (e CrossRefEntry) serializeTo(buf *bytes.Buffer) {
	buf.Write(e.Offset)
	buf.WriteByte(' ')
	buf.Write(e.Gen)
	buf.WriteByte(' ')
	buf.WriteByte(e.Kind)
	buf.Write(e.EOL)
}

// parseCrossRefEntry reads the next 20 bytes as a fixed-width entry,
// failing with ShapeViolation if they do not match the required layout.
func (c *cursor) parseCrossRefEntry() (CrossRefEntry, error) {
	if c.pos+20 > len(c.input) {
		return CrossRefEntry{}, c.incomplete("truncated cross-reference entry")
	}
	chunk := c.input[c.pos : c.pos+20]
	offset, gen := chunk[0:10], chunk[11:16]
	if !allDigits(offset) {
		return CrossRefEntry{}, c.shapeViolation("cross-reference entry offset is not 10 digits")
	}
	if chunk[10] != ' ' {
		return CrossRefEntry{}, c.shapeViolation("cross-reference entry missing separator after offset")
	}
	if !allDigits(gen) {
		return CrossRefEntry{}, c.shapeViolation("cross-reference entry generation is not 5 digits")
	}
	if chunk[16] != ' ' {
		return CrossRefEntry{}, c.shapeViolation("cross-reference entry missing separator after generation")
	}
	kind := chunk[17]
	if kind != 'n' && kind != 'f' {
		return CrossRefEntry{}, c.shapeViolation("cross-reference entry type byte is neither 'n' nor 'f'")
	}
	eol := append([]byte(nil), chunk[18:20]...)
	c.pos += 20
	return CrossRefEntry{
		Offset: append([]byte(nil), offset...),
		Gen:    append([]byte(nil), gen...),
		Kind:   kind,
		EOL:    eol,
	}, nil
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if !IsDigit(c) {
			return false
		}
	}
	return len(b) > 0
}

// CrossRefSubsection is one `first-object-number count` header followed
// by that many fixed-width entries.
type CrossRefSubsection struct {
	FirstObjNum *Integer
	WS1         []byte // single space between FirstObjNum and Count
	Count       *Integer
	WS2         []byte // whitespace between the header line and the entries
	Entries     []CrossRefEntry
}

func (s CrossRefSubsection) serializeTo(buf *bytes.Buffer) {
	s.FirstObjNum.serializeTo(buf)
	buf.Write(s.WS1)
	s.Count.serializeTo(buf)
	buf.Write(s.WS2)
	for _, e := range s.Entries {
		e.serializeTo(buf)
	}
}

// parseCrossRefSubsection parses one subsection, or fails and rewinds if
// the next bytes do not begin one (signaling the end of the subsection
// list to the caller).
func (c *cursor) parseCrossRefSubsection() (CrossRefSubsection, error) {
	start := c.pos
	firstObjNum, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return CrossRefSubsection{}, err
	}
	if !c.matchLiteral(" ") {
		c.pos = start
		return CrossRefSubsection{}, c.shapeViolation("cross-reference subsection header missing separating space")
	}
	ws1 := []byte(" ")
	count, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return CrossRefSubsection{}, err
	}
	ws2 := c.scanWhitespaceAndComments()

	n, err := strconv.Atoi(string(count.Digits))
	if err != nil {
		c.pos = start
		return CrossRefSubsection{}, c.shapeViolation("cross-reference subsection count is not a valid integer")
	}
	entries := make([]CrossRefEntry, 0, n)
	for i := 0; i < n; i++ {
		entry, err := c.parseCrossRefEntry()
		if err != nil {
			c.pos = start
			return CrossRefSubsection{}, err
		}
		entries = append(entries, entry)
	}
	return CrossRefSubsection{
		FirstObjNum: firstObjNum, WS1: ws1, Count: count, WS2: ws2, Entries: entries,
	}, nil
}

// CrossRefTable is the `xref` section: whitespace after the keyword, one
// or more subsections, and trailing whitespace.
type CrossRefTable struct {
	WSAfterXref []byte
	Subsections []CrossRefSubsection
	TrailingWS  []byte
}

func (t *CrossRefTable) serializeTo(buf *bytes.Buffer) {
	buf.WriteString("xref")
	buf.Write(t.WSAfterXref)
	for _, s := range t.Subsections {
		s.serializeTo(buf)
	}
	buf.Write(t.TrailingWS)
}

// parseCrossRefTable parses `xref` followed by one-or-more subsections
// and trailing whitespace.
func (c *cursor) parseCrossRefTable() (*CrossRefTable, error) {
	start := c.pos
	if !c.matchLiteral("xref") {
		return nil, c.unexpected("xref")
	}
	c.trace.Enter("xref-table")
	defer c.trace.Leave()

	wsAfter := c.scanWhitespaceAndComments()
	var subs []CrossRefSubsection
	for {
		sub, err := c.parseCrossRefSubsection()
		if err != nil {
			break
		}
		subs = append(subs, sub)
	}
	if len(subs) == 0 {
		c.pos = start
		return nil, c.unexpected("cross-reference subsection")
	}
	trailingWS := c.scanWhitespaceAndComments()
	return &CrossRefTable{WSAfterXref: wsAfter, Subsections: subs, TrailingWS: trailingWS}, nil
}
