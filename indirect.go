// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// IndirectReference is the `objnum gen R` token sequence used to refer to
// an IndirectDefinition elsewhere in the file.
//
// ObjNum carries a Sign even though the PDF specification does not permit
// one: real-world files contain malformed references like `-1 0 R`, and
// real-world producers emit them (see Config.ParsingMode).
type IndirectReference struct {
	ObjNum *Integer
	WS1    []byte
	Gen    *Integer
	WS2    []byte
}

func (r *IndirectReference) serializeTo(buf *bytes.Buffer) {
	r.ObjNum.serializeTo(buf)
	buf.Write(r.WS1)
	r.Gen.serializeTo(buf)
	buf.Write(r.WS2)
	buf.WriteString("R")
}

// parseIndirectReference parses `objnum gen R`, requiring whitespace
// around each token. The object-number integer permits a sign; any
// non-None sign is recorded as a Flag at the reference's starting offset.
func (c *cursor) parseIndirectReference() (*IndirectReference, error) {
	start := c.pos
	objNum, err := c.parseIntegerSigned()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws1, err := c.scanNonEmptyWhitespaceAndComments()
	if err != nil {
		c.pos = start
		return nil, err
	}
	gen, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws2, err := c.scanNonEmptyWhitespaceAndComments()
	if err != nil {
		c.pos = start
		return nil, err
	}
	if !c.matchLiteral("R") {
		c.pos = start
		return nil, c.unexpected("R")
	}
	if objNum.Sign != SignNone {
		end := c.pos
		c.pos = start
		c.flag("signed object number in indirect reference")
		c.pos = end
	}
	return &IndirectReference{ObjNum: objNum, WS1: ws1, Gen: gen, WS2: ws2}, nil
}

// IndirectDefinition is the `objnum gen obj ... endobj` wrapper that gives
// an Object its identity.
type IndirectDefinition struct {
	ObjNum *Integer
	WS1    []byte
	Gen    *Integer
	WS2    []byte
	WS3    []byte
	Obj    Object
	WS4    []byte
}

func (d *IndirectDefinition) serializeTo(buf *bytes.Buffer) {
	d.ObjNum.serializeTo(buf)
	buf.Write(d.WS1)
	d.Gen.serializeTo(buf)
	buf.Write(d.WS2)
	buf.WriteString("obj")
	buf.Write(d.WS3)
	d.Obj.serializeTo(buf)
	buf.Write(d.WS4)
	buf.WriteString("endobj")
}

// parseIndirectDefinition parses `objnum gen obj <object> endobj`.
func (c *cursor) parseIndirectDefinition() (*IndirectDefinition, error) {
	start := c.pos
	objNum, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws1, err := c.scanNonEmptyWhitespaceAndComments()
	if err != nil {
		c.pos = start
		return nil, err
	}
	gen, err := c.parseIntegerUnsigned()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws2, err := c.scanNonEmptyWhitespaceAndComments()
	if err != nil {
		c.pos = start
		return nil, err
	}
	if !c.matchLiteral("obj") {
		c.pos = start
		return nil, c.unexpected("obj")
	}
	ws3 := c.scanWhitespaceAndComments()
	obj, err := c.parseObject()
	if err != nil {
		c.pos = start
		return nil, err
	}
	ws4 := c.scanWhitespaceAndComments()
	if !c.matchLiteral("endobj") {
		c.pos = start
		return nil, c.unexpected("endobj")
	}
	return &IndirectDefinition{
		ObjNum: objNum, WS1: ws1, Gen: gen, WS2: ws2, WS3: ws3, Obj: obj, WS4: ws4,
	}, nil
}

// ObjectOrReference is either a plain Object or an IndirectReference,
// used wherever array elements and dictionary values may be either.
// In a parsed value exactly one of Reference and Obj is non-nil; the zero
// value, with both nil, appears only in whitespace ArrayParts.
type ObjectOrReference struct {
	Reference *IndirectReference
	Obj       Object
}

func (o ObjectOrReference) serializeTo(buf *bytes.Buffer) {
	if o.Reference != nil {
		o.Reference.serializeTo(buf)
		return
	}
	o.Obj.serializeTo(buf)
}

// parseObjectOrReference tries an IndirectReference first, falling back
// to a plain Object.
func (c *cursor) parseObjectOrReference() (ObjectOrReference, error) {
	start := c.pos
	if ref, err := c.parseIndirectReference(); err == nil {
		return ObjectOrReference{Reference: ref}, nil
	}
	c.pos = start
	obj, err := c.parseObject()
	if err != nil {
		return ObjectOrReference{}, err
	}
	return ObjectOrReference{Obj: obj}, nil
}
