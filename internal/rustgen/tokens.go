package rustgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Id starts a new chain with a raw identifier or keyword token.
func Id(name string) *Statement { return (&Statement{}).Id(name) }

// Id appends a raw identifier or keyword token.
func (s *Statement) Id(name string) *Statement { return s.append(Raw(name)) }

// Op appends an operator or punctuation token verbatim (e.g. "=", "::", "->").
func (s *Statement) Op(op string) *Statement { return s.append(Raw(op)) }

// Qual appends a path-qualified name, e.g. Qual("solana_program::pubkey", "Pubkey")
// renders "solana_program::pubkey::Pubkey". Qual only renders the token; it
// registers no `use` with any File.
func Qual(pkg, name string) *Statement { return (&Statement{}).Qual(pkg, name) }

// Qual appends a path-qualified name to an existing chain.
func (s *Statement) Qual(pkg, name string) *Statement {
	if pkg == "" {
		return s.append(Raw(name))
	}
	return s.append(Raw(pkg + "::" + name))
}

// Lit appends a Rust literal for v: strings are quoted, byte slices render
// as `[n, n, n]`, everything else via fmt.Sprint.
func Lit(v any) *Statement { return (&Statement{}).Lit(v) }

// Lit appends a Rust literal to an existing chain.
func (s *Statement) Lit(v any) *Statement { return s.append(Raw(renderLit(v))) }

func renderLit(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case []byte:
		return byteArrayLit(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// ByteArrayLit renders a fixed-size Rust byte array literal, e.g. the
// discriminator constants every instruction/account emitter prepends.
func ByteArrayLit(b []byte) string { return byteArrayLit(b) }

func byteArrayLit(b []byte) string {
	parts := make([]string, len(b))
	for i, by := range b {
		parts[i] = strconv.Itoa(int(by))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Str appends a quoted string literal.
func Str(s string) *Statement { return (&Statement{}).Lit(s) }

// Line wraps a pre-formatted string as a single Code fragment — an escape
// hatch for text this package has no dedicated builder for.
func Line(s string) Raw { return Raw(s) }

// Comma builds a List of items rendered as "a, b, c".
func Comma(items ...Code) List { return List{items: items, sep: ", "} }

// Block renders a brace-delimited, newline-separated, 4-space-indented
// group — every struct body, enum body, fn body, and impl body goes through
// this.
func Block(items ...Code) *Statement {
	var b strings.Builder
	b.WriteString("{\n")
	for _, it := range items {
		for _, line := range strings.Split(it.Render(), "\n") {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("}")
	return &Statement{parts: []Code{Raw(b.String())}}
}

// Derive renders a `#[derive(...)]` attribute line.
func Derive(traits ...string) Raw {
	return Raw("#[derive(" + strings.Join(traits, ", ") + ")]")
}

// Attr renders an arbitrary `#[...]` attribute line, e.g. Attr(`repr(C)`).
func Attr(inner string) Raw { return Raw("#[" + inner + "]") }

// DocComment renders one or more `///` lines.
func DocComment(lines ...string) Raw {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("/// ")
		b.WriteString(l)
	}
	return Raw(b.String())
}

// Comment renders a single `//` line comment.
func Comment(s string) Raw { return Raw("// " + s) }

// Pub prefixes "pub " onto an item.
func Pub(item Code) *Statement { return (&Statement{}).Id("pub").append(item) }

// Struct renders a struct declaration: `struct Name { body }` (the caller
// prepends Pub/Derive separately; one statement per item keeps
// File.Add free to take several Code values per declaration).
func Struct(name string, fields *Statement) *Statement {
	return (&Statement{}).Id("struct").Id(name).append(fields)
}

// TupleStruct renders `struct Name(T0, T1, ...);`.
func TupleStruct(name string, elemTypes []string) *Statement {
	return (&Statement{}).Id("struct").Id(name).Op("(" + strings.Join(elemTypes, ", ") + ");")
}

// Enum renders an enum declaration: `enum Name { body }`.
func Enum(name string, variants *Statement) *Statement {
	return (&Statement{}).Id("enum").Id(name).append(variants)
}

// Fn renders a function signature followed by a body block, e.g.
// Fn("new", "a: u8, b: u8", "Self", Block(...)).
func Fn(name, params, ret string, body *Statement) *Statement {
	s := (&Statement{}).Id("fn").Op(name + "(" + params + ")")
	if ret != "" {
		s.Op("-> " + ret)
	}
	return s.append(body)
}

// Impl renders `impl Target { body }`, or `impl Trait for Target { body }`
// when trait is non-empty.
func Impl(trait, target string, body *Statement) *Statement {
	s := &Statement{}
	if trait != "" {
		s.Id("impl").Id(trait).Id("for").Id(target)
	} else {
		s.Id("impl").Id(target)
	}
	return s.append(body)
}

// Const renders `pub const NAME: Type = value;`.
func Const(name, typ, value string) *Statement {
	return (&Statement{}).Id("pub const").Id(name + ":").Id(typ).Op("= " + value + ";")
}

// Field renders one struct field line: `pub name: Type,`.
func Field(name, typ string) Raw {
	return Raw(fmt.Sprintf("pub %s: %s,", name, typ))
}
