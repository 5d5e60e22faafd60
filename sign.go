// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Sign records whether a numeric literal carried an explicit sign
// character, and which one, so re-serialization reproduces it exactly.
type Sign int

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

func (s Sign) serializeTo(buf *bytes.Buffer) {
	switch s {
	case SignPlus:
		buf.WriteByte('+')
	case SignMinus:
		buf.WriteByte('-')
	}
}

// parseSign optionally consumes a leading '+' or '-'.
func (c *cursor) parseSign() Sign {
	if c.matchLiteral("+") {
		return SignPlus
	}
	if c.matchLiteral("-") {
		return SignMinus
	}
	return SignNone
}
