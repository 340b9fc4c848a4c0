package idl

import (
	"encoding/json"
	"fmt"

	"github.com/lugondev/solores-go/internal/diag"
)

// AnchorTypedef is a types[] entry: a named struct or enum body, wrapped
// under a "type" key with a "kind" discriminant.
type AnchorTypedef struct {
	Name string            `json:"name"`
	Docs []string          `json:"docs,omitempty"`
	Type AnchorTypeDefBody `json:"type"`
}

// AnchorTypeDefBody is the {"kind": "struct"|"enum", ...} wrapper.
type AnchorTypeDefBody struct {
	Kind     string              `json:"kind"`
	Fields   []FieldJSON         `json:"fields,omitempty"`
	Variants []AnchorEnumVariant `json:"variants,omitempty"`
}

// AnchorEnumVariant is one arm of an enum body: a bare name, a tuple of
// unnamed fields, or a struct of named fields.
type AnchorEnumVariant struct {
	Name   string      `json:"name"`
	Fields []FieldJSON `json:"fields,omitempty"`
}

// AnchorAccount is an accounts[] entry: a named typedef, same shape as a
// types[] entry, plus an optional explicit discriminator override.
type AnchorAccount struct {
	Name          string            `json:"name"`
	Docs          []string          `json:"docs,omitempty"`
	Type          AnchorTypeDefBody `json:"type"`
	Discriminator []byte            `json:"discriminator,omitempty"`
}

// AnchorInstruction is an instructions[] entry. Anchor never declares a
// discriminator; it is always derived from the instruction name.
type AnchorInstruction struct {
	Name     string               `json:"name"`
	Docs     []string             `json:"docs,omitempty"`
	Accounts []AnchorAccountEntry `json:"accounts"`
	Args     []FieldJSON          `json:"args"`
}

// AnchorAccountEntry is one element of an instruction's accounts list: a
// leaf (signer/writable/optional flags, optional PDA metadata) or a named
// group of nested entries. Both flag spellings are accepted: "writable"/
// "signer" and the older "isMut"/"isSigner".
type AnchorAccountEntry struct {
	Name       string               `json:"name"`
	Docs       []string             `json:"docs,omitempty"`
	Writable   bool                 `json:"writable,omitempty"`
	Signer     bool                 `json:"signer,omitempty"`
	IsMut      bool                 `json:"isMut,omitempty"`
	IsSigner   bool                 `json:"isSigner,omitempty"`
	IsOptional bool                 `json:"isOptional,omitempty"`
	Optional   bool                 `json:"optional,omitempty"`
	Address    string               `json:"address,omitempty"`
	Pda        *PdaJSON             `json:"pda,omitempty"`
	Accounts   []AnchorAccountEntry `json:"accounts,omitempty"`
}

// IsWritable resolves the two writable-flag spellings.
func (e AnchorAccountEntry) IsWritable() bool { return e.Writable || e.IsMut }

// MustSign resolves the two signer-flag spellings.
func (e AnchorAccountEntry) MustSign() bool { return e.Signer || e.IsSigner }

// MayBeOmitted resolves the two optional-flag spellings.
func (e AnchorAccountEntry) MayBeOmitted() bool { return e.Optional || e.IsOptional }

// IsGroup reports whether this entry is a nested group rather than a leaf.
func (e AnchorAccountEntry) IsGroup() bool { return e.Accounts != nil }

// AnchorError is an errors[] entry. Anchor assigns error codes starting at
// a fixed base offset (6000) in declaration order unless one is given.
type AnchorError struct {
	Name string `json:"name"`
	Code *int   `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// AnchorDocument is the fully dialect-typed view of a Document once
// Detect has confirmed the Anchor fingerprint.
type AnchorDocument struct {
	Name         string
	Version      string
	Address      string
	Types        []AnchorTypedef
	Accounts     []AnchorAccount
	Instructions []AnchorInstruction
	Errors       []AnchorError
	Constants    []ConstantJSON
}

// AsAnchor decodes every section of doc using Anchor's field names. Callers
// should only invoke this after Detect has returned DialectAnchor.
func AsAnchor(doc *Document) (*AnchorDocument, error) {
	out := &AnchorDocument{
		Name:    doc.Name,
		Version: doc.Version,
		Address: firstNonEmpty(doc.Address, doc.Metadata.Address),
	}
	if out.Name == "" {
		out.Name = doc.Metadata.Name
	}
	if out.Version == "" {
		out.Version = doc.Metadata.Version
	}

	for _, raw := range doc.Types {
		var t AnchorTypedef
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("types entry: %v", err)).WithCause(err)
		}
		out.Types = append(out.Types, t)
	}
	for _, raw := range doc.Accounts {
		var a AnchorAccount
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("accounts entry: %v", err)).WithCause(err)
		}
		out.Accounts = append(out.Accounts, a)
	}
	for _, raw := range doc.Instructions {
		var ix AnchorInstruction
		if err := json.Unmarshal(raw, &ix); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("instructions entry: %v", err)).WithCause(err)
		}
		out.Instructions = append(out.Instructions, ix)
	}
	for _, raw := range doc.Errors {
		var e AnchorError
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("errors entry: %v", err)).WithCause(err)
		}
		out.Errors = append(out.Errors, e)
	}
	for _, raw := range doc.Constants {
		var c ConstantJSON
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("constants entry: %v", err)).WithCause(err)
		}
		out.Constants = append(out.Constants, c)
	}
	return out, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
