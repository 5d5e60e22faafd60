// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"encoding/json"
	"fmt"
)

// EncodeJSON produces a structural JSON encoding of the parse tree, for
// the host-bridge contract: a host embedding this package
// can request a structured view of the tree for inspection without
// re-parsing the original bytes.
func EncodeJSON(f *PdfFile) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeJSON reverses EncodeJSON. As long as no
// node was edited between EncodeJSON and DecodeJSON, the decoded tree's
// Bytes() reproduces the original input exactly.
func DecodeJSON(data []byte) (*PdfFile, error) {
	var f PdfFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// objEnvelope carries a tagged Object so the JSON decoder knows which
// concrete type to reconstruct: Object is a sealed sum type with no
// structural marker of its own once serialized.
type objEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

func encodeObject(o Object) (objEnvelope, error) {
	var kind string
	switch o.(type) {
	case *Boolean:
		kind = "boolean"
	case *Integer:
		kind = "integer"
	case *Real:
		kind = "real"
	case *LiteralString:
		kind = "literalString"
	case *HexadecimalString:
		kind = "hexString"
	case *NameObject:
		kind = "name"
	case *ArrayObject:
		kind = "array"
	case *DictionaryObject:
		kind = "dictionary"
	case *StreamObject:
		kind = "stream"
	case *Null:
		kind = "null"
	default:
		return objEnvelope{}, fmt.Errorf("pdf: unknown object type %T", o)
	}
	data, err := json.Marshal(o)
	if err != nil {
		return objEnvelope{}, err
	}
	return objEnvelope{Kind: kind, Data: data}, nil
}

func decodeObject(env objEnvelope) (Object, error) {
	switch env.Kind {
	case "boolean":
		var v Boolean
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "integer":
		var v Integer
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "real":
		var v Real
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "literalString":
		var v LiteralString
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "hexString":
		var v HexadecimalString
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "name":
		var v NameObject
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "array":
		var v ArrayObject
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "dictionary":
		var v DictionaryObject
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "stream":
		var v StreamObject
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case "null":
		return &Null{}, nil
	default:
		return nil, fmt.Errorf("pdf: unknown object kind %q", env.Kind)
	}
}

type objectOrReferenceWire struct {
	Reference *IndirectReference `json:"reference,omitempty"`
	Object    *objEnvelope       `json:"object,omitempty"`
}

// MarshalJSON implements json.Marshaler for the ObjectOrReference sum
// type. The zero value (held by whitespace ArrayParts) encodes as null.
func (o ObjectOrReference) MarshalJSON() ([]byte, error) {
	if o.Reference == nil && o.Obj == nil {
		return []byte("null"), nil
	}
	if o.Reference != nil {
		return json.Marshal(objectOrReferenceWire{Reference: o.Reference})
	}
	env, err := encodeObject(o.Obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(objectOrReferenceWire{Object: &env})
}

// UnmarshalJSON implements json.Unmarshaler for the ObjectOrReference sum
// type. A JSON null leaves the zero value in place.
func (o *ObjectOrReference) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var w objectOrReferenceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Reference != nil {
		o.Reference = w.Reference
		return nil
	}
	if w.Object == nil {
		return fmt.Errorf("pdf: object-or-reference has neither reference nor object")
	}
	obj, err := decodeObject(*w.Object)
	if err != nil {
		return err
	}
	o.Obj = obj
	return nil
}

type indirectDefinitionWire struct {
	ObjNum *Integer     `json:"objNum"`
	WS1    []byte       `json:"ws1"`
	Gen    *Integer     `json:"gen"`
	WS2    []byte       `json:"ws2"`
	WS3    []byte       `json:"ws3"`
	Obj    objEnvelope  `json:"obj"`
	WS4    []byte       `json:"ws4"`
}

// MarshalJSON implements json.Marshaler for IndirectDefinition, whose Obj
// field is the Object sum type.
func (d *IndirectDefinition) MarshalJSON() ([]byte, error) {
	env, err := encodeObject(d.Obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(indirectDefinitionWire{
		ObjNum: d.ObjNum, WS1: d.WS1, Gen: d.Gen, WS2: d.WS2, WS3: d.WS3, Obj: env, WS4: d.WS4,
	})
}

// UnmarshalJSON implements json.Unmarshaler for IndirectDefinition.
func (d *IndirectDefinition) UnmarshalJSON(data []byte) error {
	var w indirectDefinitionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	obj, err := decodeObject(w.Obj)
	if err != nil {
		return err
	}
	d.ObjNum, d.WS1, d.Gen, d.WS2, d.WS3, d.Obj, d.WS4 = w.ObjNum, w.WS1, w.Gen, w.WS2, w.WS3, obj, w.WS4
	return nil
}
