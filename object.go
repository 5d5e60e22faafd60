// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// Object is any PDF object: boolean, numeric, string, name, array,
// dictionary, stream, or null. It is a sealed sum type: every concrete
// type in this package that implements isObject is an Object, and no
// type outside the package can be.
type Object interface {
	isObject()
	serializeTo(buf *bytes.Buffer)
}

// parseObject dispatches on the leading byte to the production it
// introduces.
func (c *cursor) parseObject() (Object, error) {
	if c.atEnd() {
		return nil, c.unexpected("object")
	}
	switch b := c.input[c.pos]; b {
	case '[':
		return c.parseArray()
	case '/':
		return c.parseName()
	case '(':
		return c.parseLiteralString()
	case '<':
		if c.peek2Is('<') {
			dict, err := c.parseDictionary()
			if err != nil {
				return nil, err
			}
			strm, err := c.tryParseStreamContinuation(dict)
			if err != nil {
				return nil, err
			}
			if strm != nil {
				return strm, nil
			}
			return dict, nil
		}
		return c.parseHexString()
	default:
		if b, err := c.parseBoolean(); err == nil {
			return b, nil
		}
		if n, err := c.parseNumeric(); err == nil {
			return n, nil
		}
		if n, err := c.parseNull(); err == nil {
			return n, nil
		}
		return nil, c.unexpected("object")
	}
}
