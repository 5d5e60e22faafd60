// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// BodyPart is one fragment of a Body: either an IndirectDefinition or a
// whitespace-and-comments span.
type BodyPart struct {
	IsWhitespace bool
	WS           []byte
	Def          *IndirectDefinition
}

func (p BodyPart) serializeTo(buf *bytes.Buffer) {
	if p.IsWhitespace {
		buf.Write(p.WS)
		return
	}
	p.Def.serializeTo(buf)
}

// Body is the sequence of indirect object definitions (and the
// whitespace between them) making up one section of a PDF file.
type Body struct {
	Parts []BodyPart
}

func (b *Body) serializeTo(buf *bytes.Buffer) {
	for _, p := range b.Parts {
		p.serializeTo(buf)
	}
}

// parseBody accumulates body parts until a part would be empty (no
// progress), which signals that the body has ended — typically because
// the next bytes are `xref`, `trailer`, or `startxref`. It never fails.
func (c *cursor) parseBody() *Body {
	var parts []BodyPart
	for {
		if def, err := c.parseIndirectDefinition(); err == nil {
			parts = append(parts, BodyPart{Def: def})
			continue
		}
		ws := c.scanWhitespaceAndComments()
		if len(ws) == 0 {
			return &Body{Parts: parts}
		}
		parts = append(parts, BodyPart{IsWhitespace: true, WS: ws})
	}
}
