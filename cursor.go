// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"

	"github.com/sassoftware/pdf-roundtrip/logger"
	"github.com/sassoftware/pdf-roundtrip/tracer"
)

// Flag records a construct the parser accepted even though it is not
// conformant with the PDF specification, such
// as a signed object number on an indirect reference.
type Flag struct {
	Offset int
	Reason string
}

// cursor is the parser's cursor over the input buffer: the equivalent of
// a simple token-reading buffer, generalized to keep every
// intervening byte instead of discarding it.
type cursor struct {
	input []byte
	pos   int
	cfg   *Config
	trace tracer.Trace
	flags []Flag
}

func newCursor(input []byte, cfg *Config) *cursor {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	return &cursor{input: input, cfg: cfg}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peekIs(b byte) bool {
	return !c.atEnd() && c.input[c.pos] == b
}

func (c *cursor) peek2Is(b byte) bool {
	return c.pos+1 < len(c.input) && c.input[c.pos+1] == b
}

func (c *cursor) hasPrefix(s string) bool {
	return bytes.HasPrefix(c.input[c.pos:], []byte(s))
}

// matchLiteral consumes s if the cursor is positioned at it, and reports
// whether it did.
func (c *cursor) matchLiteral(s string) bool {
	if c.hasPrefix(s) {
		c.pos += len(s)
		return true
	}
	return false
}

// mustLiteral consumes s or fails with UnexpectedToken.
func (c *cursor) mustLiteral(s string) error {
	if !c.matchLiteral(s) {
		return c.unexpected("literal " + s)
	}
	return nil
}

// prefix returns up to n bytes starting at the cursor, for error messages.
func (c *cursor) prefix(n int) []byte {
	end := c.pos + n
	if end > len(c.input) {
		end = len(c.input)
	}
	if c.pos > end {
		return nil
	}
	return c.input[c.pos:end]
}

// flag records a Flag at the cursor's current offset and logs it per the
// configured ParsingMode.
func (c *cursor) flag(reason string) {
	f := Flag{Offset: c.pos, Reason: reason}
	c.flags = append(c.flags, f)
	if c.cfg != nil && c.cfg.ParsingMode == Strict {
		logger.Error("non-conformant construct accepted", "offset", f.Offset, "reason", reason)
	} else {
		logger.Debug("non-conformant construct accepted", "offset", f.Offset, "reason", reason)
	}
}
