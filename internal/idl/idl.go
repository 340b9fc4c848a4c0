// Package idl parses an IDL JSON document into a structurally permissive
// tree, then decides which of the two supported dialects — Anchor or
// Shank — it is, by structural fingerprint rather than an explicit field.
//
// Because the two dialects' account/instruction shapes disagree, the first
// pass decodes only what both share (name, version, address, and the
// top-level sections as raw JSON), and a second, dialect-specific pass
// (AsAnchor/AsShank) decodes each section using the field names that
// dialect actually uses.
package idl

import (
	"encoding/json"
	"fmt"

	"github.com/lugondev/solores-go/internal/diag"
)

// Dialect identifies which IDL authoring toolchain produced a document.
type Dialect string

const (
	DialectAnchor Dialect = "anchor"
	DialectShank  Dialect = "shank"
)

// Document is the permissive top-level parse: every dialect-specific detail
// is deferred as json.RawMessage until the dialect is known.
type Document struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Address      string            `json:"address"`
	Metadata     RawMetadata       `json:"metadata"`
	Types        []json.RawMessage `json:"types"`
	Accounts     []json.RawMessage `json:"accounts"`
	Instructions []json.RawMessage `json:"instructions"`
	Errors       []json.RawMessage `json:"errors"`
	Constants    []json.RawMessage `json:"constants,omitempty"`
}

// ConstantJSON is a top-level IDL constant, emitted into a constants.rs
// module.
type ConstantJSON struct {
	Name  string   `json:"name"`
	Type  TypeJSON `json:"type"`
	Value string   `json:"value"`
	Docs  []string `json:"docs,omitempty"`
}

// PdaJSON describes a PDA's seed composition. It is carried into the model
// but not rendered into the emitted Rust, and never affects the wire format.
type PdaJSON struct {
	Seeds   []SeedJSON `json:"seeds"`
	Program *SeedJSON  `json:"program,omitempty"`
}

// SeedJSON is one element of a PDA seed list: a constant byte string, a
// reference to another account in the same instruction, or an instruction
// argument.
type SeedJSON struct {
	Kind  string   `json:"kind"` // "const", "account", or "arg"
	Value []byte   `json:"value,omitempty"`
	Path  string   `json:"path,omitempty"`
	Type  TypeJSON `json:"type,omitempty"`
}

// RawMetadata captures the handful of metadata keys both dialects may set.
type RawMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Address string `json:"address"`
}

// Parse decodes raw JSON bytes into a permissive Document. It never fails on
// dialect-specific shape mismatches — only on bytes that are not valid JSON
// or not a JSON object.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, diag.MalformedIDL(fmt.Sprintf("invalid JSON: %v", err)).WithCause(err)
	}
	return &doc, nil
}

// TypeJSON is the wire shape of an IDL type expression, shared verbatim by
// both dialects: a bare string for primitives/pubkey, or one of the object
// forms for vectors, options, arrays, tuples, and references.
type TypeJSON struct {
	// Primitive holds the bare-string form ("u64", "pubkey", "string", ...).
	Primitive string
	Defined   *DefinedJSON `json:"defined,omitempty"`
	Vec       *TypeJSON    `json:"vec,omitempty"`
	Option    *TypeJSON    `json:"option,omitempty"`
	COption   *TypeJSON    `json:"coption,omitempty"`
	Array     *ArrayJSON   `json:"array,omitempty"`
	Tuple     []TypeJSON   `json:"tuple,omitempty"`
}

// DefinedJSON references a user-declared typedef or account by name.
type DefinedJSON struct {
	Name string `json:"name"`
}

// ArrayJSON is the 2-tuple [elementType, length] form of a fixed array.
type ArrayJSON struct {
	Elem   TypeJSON
	Length int
}

// UnmarshalJSON accepts either a bare string ("u64") or one of the object
// forms ({"vec": ...}, {"defined": ...}, etc).
func (t *TypeJSON) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Primitive = s
		return nil
	}

	// "defined" appears either as a bare string or as {"name": ...} across
	// IDL generator versions; accept both.
	var obj struct {
		Defined json.RawMessage `json:"defined"`
		Vec     *TypeJSON       `json:"vec"`
		Option  *TypeJSON       `json:"option"`
		COption *TypeJSON       `json:"coption"`
		Array   json.RawMessage `json:"array"`
		Tuple   []TypeJSON      `json:"tuple"`
		Generic string          `json:"generic"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return diag.MalformedIDL(fmt.Sprintf("unrecognized type expression: %s", string(data)))
	}
	if obj.Generic != "" {
		return diag.MalformedIDL(fmt.Sprintf("generic type parameter %q is not supported", obj.Generic))
	}

	switch {
	case obj.Defined != nil:
		var name string
		if err := json.Unmarshal(obj.Defined, &name); err == nil {
			t.Defined = &DefinedJSON{Name: name}
			return nil
		}
		var named DefinedJSON
		if err := json.Unmarshal(obj.Defined, &named); err != nil {
			return diag.MalformedIDL(fmt.Sprintf("malformed defined type: %s", string(obj.Defined)))
		}
		t.Defined = &named
		return nil
	case obj.Vec != nil:
		t.Vec = obj.Vec
		return nil
	case obj.Option != nil:
		t.Option = obj.Option
		return nil
	case obj.COption != nil:
		t.COption = obj.COption
		return nil
	case obj.Array != nil:
		var pair [2]json.RawMessage
		if err := json.Unmarshal(obj.Array, &pair); err != nil {
			return diag.MalformedIDL(fmt.Sprintf("malformed array type: %s", string(obj.Array)))
		}
		var elem TypeJSON
		if err := json.Unmarshal(pair[0], &elem); err != nil {
			return err
		}
		var length int
		if err := json.Unmarshal(pair[1], &length); err != nil {
			return diag.MalformedIDL(fmt.Sprintf("array length is not an integer: %s", string(pair[1])))
		}
		t.Array = &ArrayJSON{Elem: elem, Length: length}
		return nil
	case obj.Tuple != nil:
		t.Tuple = obj.Tuple
		return nil
	default:
		return diag.MalformedIDL(fmt.Sprintf("unrecognized type expression: %s", string(data)))
	}
}

// FieldJSON is a named, typed field shared by struct bodies, instruction
// args, and event fields across both dialects.
type FieldJSON struct {
	Name string   `json:"name"`
	Type TypeJSON `json:"type"`
	Docs []string `json:"docs,omitempty"`
}
