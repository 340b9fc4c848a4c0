// Package model is the dialect-neutral named-entity model every emitter
// lowers from. Both normalize_anchor.go and normalize_shank.go build a
// Program from their respective idl.*Document.
package model

import (
	"github.com/lugondev/solores-go/internal/idl"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

// Program is the fully normalized, dialect-neutral view of one IDL.
type Program struct {
	Name         string
	Version      string
	Address      string // "" if the IDL declared none; caller resolves a fallback.
	Dialect      idl.Dialect
	Types        []NamedType
	Accounts     []AccountDef
	Instructions []InstructionDef
	Errors       []ErrorDef
	Constants    []ConstantDef
}

// NamedType is a user-declared struct or enum, shared by typedefs and the
// body of every account.
type NamedType struct {
	Name   string
	Docs   []string
	Struct *StructBody // mutually exclusive with Enum
	Enum   *EnumBody
}

// StructBody is an ordered list of named, typed fields.
type StructBody struct {
	Fields []FieldDef
}

// FieldDef is one struct field or tuple-variant element.
type FieldDef struct {
	Name string
	Type *typeexpr.TypeExpr
	Docs []string
}

// EnumBody is an ordered list of variants.
type EnumBody struct {
	Variants []EnumVariant
}

// EnumVariant is one arm of an enum: a unit variant, a tuple variant
// (unnamed fields), or a struct variant (named fields) — distinguished by
// which of Fields is populated and whether those fields carry names.
type EnumVariant struct {
	Name   string
	Fields []FieldDef
	Named  bool // true if Fields came from a struct-variant body
}

// AccountDef is a NamedType plus the information needed to emit its
// discriminator-prefixed wire wrapper. Discriminator is always populated by
// normalization: for Anchor, either the IDL's explicit override or the
// sha256-derived default; for Shank, whatever byte string (if any) the IDL
// declared verbatim. Shank IDLs may omit it entirely, in which case the
// emitted constant is a zero-length array.
type AccountDef struct {
	NamedType
	Discriminator []byte
}

// ConstantDef is a top-level `pub const` emitted into constants.rs.
type ConstantDef struct {
	Name  string
	Type  *typeexpr.TypeExpr
	Value string
	Docs  []string
}

// ErrorDef is one custom program error, with an explicit or positionally
// assigned numeric code.
type ErrorDef struct {
	Name string
	Code int
	Msg  string
}

// InstructionDef is one program instruction: its discriminator, its
// flattened/grouped account list, and its argument struct fields.
type InstructionDef struct {
	Name          string
	Docs          []string
	Discriminator []byte
	Accounts      []AccountEntry
	Args          []FieldDef
}

// AccountEntry is either a Leaf (a single account slot) or a Group (a named,
// nested collection of entries). Exactly one of Leaf or Group is non-nil.
type AccountEntry struct {
	Leaf  *AccountLeaf
	Group *AccountGroup
}

// IsGroup reports whether this entry is a nested group.
func (e AccountEntry) IsGroup() bool { return e.Group != nil }

// AccountLeaf is a single account slot in an instruction's account list.
type AccountLeaf struct {
	Name     string
	Docs     []string
	Writable bool
	Signer   bool
	Optional bool
	Address  string // fixed expected address, if any
	PDA      *PDA
}

// AccountGroup is a named collection of nested entries (Anchor's nested
// `accounts` composite account structs).
type AccountGroup struct {
	Name     string
	Docs     []string
	Entries  []AccountEntry
}

// PDA carries the seed composition of a program-derived address as parsed
// from the IDL. No emitter renders it into the generated crate.
type PDA struct {
	Seeds   []Seed
	Program *Seed
}

// Seed is one element of a PDA's seed list.
type Seed struct {
	Kind  string // "const", "account", or "arg"
	Value []byte
	Path  string
	Type  *typeexpr.TypeExpr
}

func pdaFromJSON(p *idl.PdaJSON) *PDA {
	if p == nil {
		return nil
	}
	out := &PDA{}
	for _, s := range p.Seeds {
		out.Seeds = append(out.Seeds, seedFromJSON(s))
	}
	if p.Program != nil {
		seed := seedFromJSON(*p.Program)
		out.Program = &seed
	}
	return out
}

func seedFromJSON(s idl.SeedJSON) Seed {
	seed := Seed{Kind: s.Kind, Value: s.Value, Path: s.Path}
	if s.Kind == "arg" {
		if te, err := typeexpr.FromJSON(s.Type); err == nil {
			seed.Type = te
		}
	}
	return seed
}
