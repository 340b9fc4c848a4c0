package idl

import (
	"encoding/json"
	"fmt"

	"github.com/lugondev/solores-go/internal/diag"
)

// ShankTypedef is a types[] entry. Shank has no "kind" wrapper: a typedef
// with Fields is a struct, one with Variants is an enum — never both.
type ShankTypedef struct {
	Name     string              `json:"name"`
	Docs     []string            `json:"docs,omitempty"`
	Fields   []FieldJSON         `json:"fields,omitempty"`
	Variants []AnchorEnumVariant `json:"variants,omitempty"`
}

// IsEnum reports whether the typedef is an enum body rather than a struct.
func (t ShankTypedef) IsEnum() bool { return t.Variants != nil }

// ShankAccount is an accounts[] entry: a flat struct with an explicit (and
// possibly absent) single-byte or 8-byte discriminant.
type ShankAccount struct {
	Name          string      `json:"name"`
	Docs          []string    `json:"docs,omitempty"`
	Fields        []FieldJSON `json:"fields"`
	Discriminant  *int        `json:"discriminant,omitempty"`
	Discriminator []byte      `json:"discriminator,omitempty"`
}

// ShankInstruction is an instructions[] entry; the discriminant is always
// explicit, never derived.
type ShankInstruction struct {
	Name         string              `json:"name"`
	Docs         []string            `json:"docs,omitempty"`
	Discriminant int                 `json:"discriminant"`
	Accounts     []ShankAccountEntry `json:"accounts"`
	Args         []FieldJSON         `json:"args"`
}

// ShankAccountEntry is one element of an instruction's accounts list.
// Shank has no nested account groups; every entry is a leaf.
type ShankAccountEntry struct {
	Name     string   `json:"name"`
	Docs     []string `json:"docs,omitempty"`
	Writable bool     `json:"writable,omitempty"`
	Signer   bool     `json:"signer,omitempty"`
	Optional bool     `json:"optional,omitempty"`
	Address  string   `json:"address,omitempty"`
	Pda      *PdaJSON `json:"pda,omitempty"`
}

// ShankError is an errors[] entry, same shape as Anchor's.
type ShankError struct {
	Name string `json:"name"`
	Code *int   `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ShankDocument is the fully dialect-typed view of a Document once Detect
// has confirmed the Shank fingerprint.
type ShankDocument struct {
	Name         string
	Version      string
	Address      string
	Types        []ShankTypedef
	Accounts     []ShankAccount
	Instructions []ShankInstruction
	Errors       []ShankError
	Constants    []ConstantJSON
}

// AsShank decodes every section of doc using Shank's field names. Callers
// should only invoke this after Detect has returned DialectShank.
func AsShank(doc *Document) (*ShankDocument, error) {
	out := &ShankDocument{
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
		var t ShankTypedef
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("types entry: %v", err)).WithCause(err)
		}
		out.Types = append(out.Types, t)
	}
	for _, raw := range doc.Accounts {
		var a ShankAccount
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("accounts entry: %v", err)).WithCause(err)
		}
		out.Accounts = append(out.Accounts, a)
	}
	for _, raw := range doc.Instructions {
		var ix ShankInstruction
		if err := json.Unmarshal(raw, &ix); err != nil {
			return nil, diag.MalformedIDL(fmt.Sprintf("instructions entry: %v", err)).WithCause(err)
		}
		out.Instructions = append(out.Instructions, ix)
	}
	for _, raw := range doc.Errors {
		var e ShankError
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
