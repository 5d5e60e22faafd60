// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// StreamObject is a dictionary followed by a raw byte payload: the
// dictionary, the whitespace-and-comments span before `stream`, the EOL
// variant that followed `stream` (CRLF or LF only — a bare CR is not
// accepted here), and the content bytes up to the first occurrence of
// `endstream`.
//
// The content length is authoritative; the dictionary's /Length entry is
// never consulted. If the content legitimately
// contains the literal bytes `endstream`, this truncates early — a known,
// accepted limitation.
type StreamObject struct {
	Dict           *DictionaryObject
	WSBeforeStream []byte
	EOL            EOLKind
	Content        []byte
}

func (s *StreamObject) isObject() {}

func (s *StreamObject) serializeTo(buf *bytes.Buffer) {
	s.Dict.serializeTo(buf)
	buf.Write(s.WSBeforeStream)
	buf.WriteString("stream")
	buf.Write(s.EOL.bytes())
	buf.Write(s.Content)
	buf.WriteString("endstream")
}

// tryParseStreamContinuation attempts to extend an already-parsed
// dictionary into a StreamObject. It returns (nil, nil) if the bytes
// following the dictionary are not `whitespace stream EOL`, in which case
// the cursor is left exactly where the dictionary parse ended and the
// caller should use the dictionary as-is. Once the `stream` keyword has
// matched, this is committed: a missing EOL or a missing `endstream` is a
// hard Incomplete error, not a fallback.
func (c *cursor) tryParseStreamContinuation(dict *DictionaryObject) (*StreamObject, error) {
	start := c.pos
	ws := c.scanWhitespaceAndComments()
	if !c.matchLiteral("stream") {
		c.pos = start
		return nil, nil
	}
	eol := c.scanEOL()
	if eol != EOLLF && eol != EOLCRLF {
		return nil, c.incomplete("stream keyword not followed by CRLF or LF")
	}
	contentStart := c.pos
	idx := bytes.Index(c.input[c.pos:], []byte("endstream"))
	if idx < 0 {
		c.pos = len(c.input)
		return nil, c.incomplete("missing endstream")
	}
	content := c.input[contentStart : contentStart+idx]
	c.pos = contentStart + idx
	c.pos += len("endstream")
	return &StreamObject{Dict: dict, WSBeforeStream: ws, EOL: eol, Content: content}, nil
}
