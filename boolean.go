// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Boolean is a PDF boolean object, `true` or `false`.
type Boolean struct {
	Value bool
}

func (b *Boolean) isObject() {}

func (b *Boolean) serializeTo(buf *bytes.Buffer) {
	if b.Value {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

// parseBoolean matches the literal true or false. Case-sensitive.
func (c *cursor) parseBoolean() (*Boolean, error) {
	if c.matchLiteral("true") {
		return &Boolean{Value: true}, nil
	}
	if c.matchLiteral("false") {
		return &Boolean{Value: false}, nil
	}
	return nil, c.unexpected("true or false")
}
