// Package typeexpr is a typed algebra for IDL type expressions, parsed
// from either dialect's JSON encoding, plus the memoized transitive
// queries the emitters need to decide import lists.
package typeexpr

import (
	"fmt"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/idl"
	"github.com/lugondev/solores-go/internal/util"
)

// Kind discriminates the cases of the TypeExpr sum type.
type Kind int

const (
	KindPrimitive Kind = iota
	KindFixedArray
	KindVector
	KindOption
	KindTuple
	KindDefinedByName
	KindPublicKey
)

// Primitive enumerates the scalar types every dialect's IDL format shares.
type Primitive int

const (
	PrimU8 Primitive = iota
	PrimI8
	PrimU16
	PrimI16
	PrimU32
	PrimI32
	PrimU64
	PrimI64
	PrimU128
	PrimI128
	PrimF32
	PrimF64
	PrimBool
	PrimString
	PrimBytes
)

var primitiveNames = map[string]Primitive{
	"u8": PrimU8, "i8": PrimI8,
	"u16": PrimU16, "i16": PrimI16,
	"u32": PrimU32, "i32": PrimI32,
	"u64": PrimU64, "i64": PrimI64,
	"u128": PrimU128, "i128": PrimI128,
	"f32": PrimF32, "f64": PrimF64,
	"bool":  PrimBool,
	"string": PrimString,
	"bytes": PrimBytes,
}

// RustName returns the Rust scalar type this primitive lowers to.
func (p Primitive) RustName() string {
	switch p {
	case PrimU8:
		return "u8"
	case PrimI8:
		return "i8"
	case PrimU16:
		return "u16"
	case PrimI16:
		return "i16"
	case PrimU32:
		return "u32"
	case PrimI32:
		return "i32"
	case PrimU64:
		return "u64"
	case PrimI64:
		return "i64"
	case PrimU128:
		return "u128"
	case PrimI128:
		return "i128"
	case PrimF32:
		return "f32"
	case PrimF64:
		return "f64"
	case PrimBool:
		return "bool"
	case PrimString:
		return "String"
	case PrimBytes:
		return "Vec<u8>"
	default:
		return "()"
	}
}

// TypeExpr is the recursive type-expression tree. Every node is immutable
// once built, so the memoized queries in queries.go can key on pointer
// identity.
type TypeExpr struct {
	Kind Kind

	Primitive Primitive // KindPrimitive

	Elem   *TypeExpr // KindFixedArray, KindVector, KindOption
	Length int       // KindFixedArray

	Elems []*TypeExpr // KindTuple

	Name string // KindDefinedByName
}

// NewPrimitive constructs a KindPrimitive node.
func NewPrimitive(p Primitive) *TypeExpr { return &TypeExpr{Kind: KindPrimitive, Primitive: p} }

// PublicKey constructs the KindPublicKey node, the one scalar with its own
// kind rather than a Primitive case, since its Rust lowering (solana_program::pubkey::Pubkey)
// and borsh round-trip are both distinct from every numeric/string primitive.
func PublicKey() *TypeExpr { return &TypeExpr{Kind: KindPublicKey} }

// FixedArray constructs a KindFixedArray node of elem repeated length times.
func FixedArray(elem *TypeExpr, length int) *TypeExpr {
	return &TypeExpr{Kind: KindFixedArray, Elem: elem, Length: length}
}

// Vector constructs a KindVector node (IDL "vec").
func Vector(elem *TypeExpr) *TypeExpr { return &TypeExpr{Kind: KindVector, Elem: elem} }

// Option constructs a KindOption node (IDL "option" or "coption").
func Option(elem *TypeExpr) *TypeExpr { return &TypeExpr{Kind: KindOption, Elem: elem} }

// Tuple constructs a KindTuple node.
func Tuple(elems []*TypeExpr) *TypeExpr { return &TypeExpr{Kind: KindTuple, Elems: elems} }

// DefinedByName constructs a KindDefinedByName node referencing a typedef or
// account declared elsewhere in the same IDL.
func DefinedByName(name string) *TypeExpr { return &TypeExpr{Kind: KindDefinedByName, Name: name} }

// FromJSON parses a dialect-neutral idl.TypeJSON into a TypeExpr.
func FromJSON(t idl.TypeJSON) (*TypeExpr, error) {
	switch {
	case t.Primitive != "":
		if t.Primitive == "publicKey" || t.Primitive == "pubkey" {
			return PublicKey(), nil
		}
		p, ok := primitiveNames[t.Primitive]
		if !ok {
			return nil, diag.MalformedIDL(fmt.Sprintf("unknown primitive type %q", t.Primitive))
		}
		return NewPrimitive(p), nil

	case t.Defined != nil:
		return DefinedByName(t.Defined.Name), nil

	case t.Vec != nil:
		elem, err := FromJSON(*t.Vec)
		if err != nil {
			return nil, err
		}
		return Vector(elem), nil

	case t.Option != nil:
		elem, err := FromJSON(*t.Option)
		if err != nil {
			return nil, err
		}
		return Option(elem), nil

	case t.COption != nil:
		elem, err := FromJSON(*t.COption)
		if err != nil {
			return nil, err
		}
		return Option(elem), nil

	case t.Array != nil:
		elem, err := FromJSON(t.Array.Elem)
		if err != nil {
			return nil, err
		}
		return FixedArray(elem, t.Array.Length), nil

	case t.Tuple != nil:
		elems := make([]*TypeExpr, len(t.Tuple))
		for i, sub := range t.Tuple {
			e, err := FromJSON(sub)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return Tuple(elems), nil

	default:
		return nil, diag.MalformedIDL("empty type expression")
	}
}

// String renders a TypeExpr as its Rust spelling, ignoring defined-type
// name resolution details the emitter layer handles (escaping, module path).
func (t *TypeExpr) String() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive.RustName()
	case KindPublicKey:
		return "Pubkey"
	case KindFixedArray:
		return fmt.Sprintf("[%s; %d]", t.Elem.String(), t.Length)
	case KindVector:
		return fmt.Sprintf("Vec<%s>", t.Elem.String())
	case KindOption:
		return fmt.Sprintf("Option<%s>", t.Elem.String())
	case KindTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "(" + joinComma(parts) + ")"
	case KindDefinedByName:
		// Declaration sites emit PascalCase type names; references must go
		// through the same normalization or the two drift when the IDL
		// declares a type with any other casing.
		return util.ToPascalCase(t.Name)
	default:
		return "()"
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
