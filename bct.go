// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// XrefAndTrailer pairs a CrossRefTable with the Trailer that follows it.
// A BodyCrossrefTrailer's xref/trailer pair is optional as a whole: when
// absent, a later linearized or hybrid file's cross-reference stream
// bytes are absorbed into the body instead.
type XrefAndTrailer struct {
	Xref    *CrossRefTable
	Trailer *Trailer
}

func (x *XrefAndTrailer) serializeTo(buf *bytes.Buffer) {
	x.Xref.serializeTo(buf)
	x.Trailer.serializeTo(buf)
}

// BodyCrossrefTrailer (BCT) is the unit repeated once per incremental
// update: a body, an optional cross-reference table and trailer, and a
// startxref/%%EOF block.
type BodyCrossrefTrailer struct {
	Body      *Body
	XrefTlr   *XrefAndTrailer // nil if absent
	Startxref *StartxrefEofBlock
}

func (b *BodyCrossrefTrailer) serializeTo(buf *bytes.Buffer) {
	b.Body.serializeTo(buf)
	if b.XrefTlr != nil {
		b.XrefTlr.serializeTo(buf)
	}
	b.Startxref.serializeTo(buf)
}

// parseBodyCrossrefTrailer parses one BCT.
func (c *cursor) parseBodyCrossrefTrailer() (*BodyCrossrefTrailer, error) {
	body := c.parseBody()

	var xrefTlr *XrefAndTrailer
	if xref, err := c.parseCrossRefTable(); err == nil {
		trailer, err := c.parseTrailer()
		if err != nil {
			return nil, err
		}
		xrefTlr = &XrefAndTrailer{Xref: xref, Trailer: trailer}
	}

	startxref, err := c.parseStartxrefEofBlock()
	if err != nil {
		return nil, err
	}
	return &BodyCrossrefTrailer{Body: body, XrefTlr: xrefTlr, Startxref: startxref}, nil
}
