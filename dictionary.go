// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "bytes"

// KeyValuePair is one name/value entry of a DictionaryObject. WS is the
// whitespace-and-comments span between the key and the value, stored
// per-pair rather than split into separate DictionaryParts; it may be
// empty (e.g. `/Type<<...` where the name's regular run ends at a
// delimiter with nothing between it and the value).
type KeyValuePair struct {
	Key   *NameObject
	WS    []byte
	Value ObjectOrReference
}

func (kv KeyValuePair) serializeTo(buf *bytes.Buffer) {
	kv.Key.serializeTo(buf)
	buf.Write(kv.WS)
	kv.Value.serializeTo(buf)
}

// DictionaryPart is one fragment of a DictionaryObject: either a
// KeyValuePair, or a non-empty whitespace-and-comments span appearing
// between `<<` and the first pair, between pairs, or before `>>`.
type DictionaryPart struct {
	IsWhitespace bool
	WS           []byte
	Pair         *KeyValuePair
}

func (p DictionaryPart) serializeTo(buf *bytes.Buffer) {
	if p.IsWhitespace {
		buf.Write(p.WS)
		return
	}
	p.Pair.serializeTo(buf)
}

// DictionaryObject is a PDF dictionary. The order of its parts is
// preserved exactly as parsed; duplicate keys are tolerated.
type DictionaryObject struct {
	Parts []DictionaryPart
}

func (d *DictionaryObject) isObject() {}

func (d *DictionaryObject) serializeTo(buf *bytes.Buffer) {
	buf.WriteString("<<")
	for _, p := range d.Parts {
		p.serializeTo(buf)
	}
	buf.WriteString(">>")
}

// Lookup returns the value of the first pair with the given key name
// (matching on NameObject.Value), and whether it was found. This is a
// read-only convenience; the parser and serializer never use it.
func (d *DictionaryObject) Lookup(key string) (ObjectOrReference, bool) {
	for _, p := range d.Parts {
		if p.Pair == nil {
			continue
		}
		if string(p.Pair.Key.Value()) == key {
			return p.Pair.Value, true
		}
	}
	return ObjectOrReference{}, false
}

// parseDictionary parses `<<` part* `>>`.
func (c *cursor) parseDictionary() (*DictionaryObject, error) {
	start := c.pos
	if !c.matchLiteral("<<") {
		return nil, c.unexpected("<<")
	}
	c.trace.Enter("dictionary")
	defer c.trace.Leave()

	var parts []DictionaryPart
	for {
		if c.atEnd() {
			c.pos = start
			return nil, c.incomplete("unterminated dictionary")
		}
		if c.hasPrefix(">>") {
			c.pos += 2
			return &DictionaryObject{Parts: parts}, nil
		}
		if ws, err := c.scanNonEmptyWhitespaceAndComments(); err == nil {
			parts = append(parts, DictionaryPart{IsWhitespace: true, WS: ws})
			continue
		}
		key, err := c.parseName()
		if err != nil {
			c.pos = start
			return nil, err
		}
		ws := c.scanWhitespaceAndComments()
		val, err := c.parseObjectOrReference()
		if err != nil {
			c.pos = start
			return nil, err
		}
		parts = append(parts, DictionaryPart{Pair: &KeyValuePair{Key: key, WS: ws, Value: val}})
	}
}
