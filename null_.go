// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Null is the PDF null object.
type Null struct{}

func (n *Null) isObject() {}

func (n *Null) serializeTo(buf *bytes.Buffer) {
	buf.WriteString("null")
}

// parseNull matches the literal null.
func (c *cursor) parseNull() (*Null, error) {
	if c.matchLiteral("null") {
		return &Null{}, nil
	}
	return nil, c.unexpected("null")
}
