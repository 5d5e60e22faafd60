// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Numeric is either an Integer or a Real.
type Numeric interface {
	Object
	isNumeric()
}

// Integer is a PDF integer, keeping its sign and raw digit bytes so
// leading zeros round-trip exactly.
type Integer struct {
	Sign   Sign
	Digits []byte
}

func (i *Integer) isObject()  {}
func (i *Integer) isNumeric() {}

func (i *Integer) serializeTo(buf *bytes.Buffer) {
	i.Sign.serializeTo(buf)
	buf.Write(i.Digits)
}

// Real is a PDF real number. Either IntDigits or FracDigits (but not
// both) may be empty, to preserve forms like `4.` or `-.002`.
type Real struct {
	Sign       Sign
	IntDigits  []byte
	FracDigits []byte
}

func (r *Real) isObject()  {}
func (r *Real) isNumeric() {}

func (r *Real) serializeTo(buf *bytes.Buffer) {
	r.Sign.serializeTo(buf)
	buf.Write(r.IntDigits)
	buf.WriteByte('.')
	buf.Write(r.FracDigits)
}

// parseDigits consumes one-or-more ASCII digits and returns the raw slice.
func (c *cursor) parseDigits() ([]byte, error) {
	start := c.pos
	for !c.atEnd() && IsDigit(c.input[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return nil, c.unexpected("digit")
	}
	return c.input[start:c.pos], nil
}

// scanDigits consumes zero-or-more ASCII digits and returns the raw slice,
// possibly empty. It never fails.
func (c *cursor) scanDigits() []byte {
	start := c.pos
	for !c.atEnd() && IsDigit(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// parseIntegerSigned parses Sign + one-or-more digits.
func (c *cursor) parseIntegerSigned() (*Integer, error) {
	start := c.pos
	sign := c.parseSign()
	digits, err := c.parseDigits()
	if err != nil {
		c.pos = start
		return nil, err
	}
	return &Integer{Sign: sign, Digits: digits}, nil
}

// parseIntegerUnsigned parses one-or-more digits with no sign field.
func (c *cursor) parseIntegerUnsigned() (*Integer, error) {
	digits, err := c.parseDigits()
	if err != nil {
		return nil, err
	}
	return &Integer{Sign: SignNone, Digits: digits}, nil
}

// tryParseReal attempts Sign + digits* + '.' + digits*, failing (and
// rewinding) unless both digit groups would not be empty together.
func (c *cursor) tryParseReal() (*Real, error) {
	start := c.pos
	sign := c.parseSign()
	intDigits := c.scanDigits()
	if !c.matchLiteral(".") {
		c.pos = start
		return nil, c.unexpected("real number")
	}
	fracDigits := c.scanDigits()
	if len(intDigits) == 0 && len(fracDigits) == 0 {
		c.pos = start
		return nil, c.unexpected("real number")
	}
	return &Real{Sign: sign, IntDigits: intDigits, FracDigits: fracDigits}, nil
}

// parseNumeric tries Real first, falling back to a signed Integer. Real
// must be tried first: `123` is valid both as the integer 123 and as a
// failed real (no dot), and trying real first is what lets the absence of
// a dot fall through to the integer parse.
func (c *cursor) parseNumeric() (Numeric, error) {
	start := c.pos
	if real, err := c.tryParseReal(); err == nil {
		return real, nil
	}
	c.pos = start
	return c.parseIntegerSigned()
}
