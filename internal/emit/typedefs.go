// Package emit lowers the normalized model into Rust source text via
// internal/rustgen, one emitter per output module (typedefs, accounts,
// instructions, errors, constants, lib).
package emit

import (
	"fmt"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/rustgen"
	"github.com/lugondev/solores-go/internal/typeexpr"
	"github.com/lugondev/solores-go/internal/util"
)

var derivedTraits = []string{"Clone", "Debug", "PartialEq", "BorshSerialize", "BorshDeserialize"}

// serdeCfgAttr gates the JSON-friendly derives behind the crate's `serde`
// feature, so the generated types only pull in serde when a consumer asks.
const serdeCfgAttr = `#[cfg_attr(feature = "serde", derive(serde::Serialize, serde::Deserialize))]`

// Typedefs renders src/typedefs.rs: one struct or enum per user-declared
// type, none of them discriminator-prefixed (only accounts and instruction
// args carry a wire discriminator).
func Typedefs(types []model.NamedType, cache *typeexpr.QueryCache) string {
	f := rustgen.NewFile()
	f.Use(commonImports()[0])

	needsKey := false
	for _, nt := range types {
		if nt.Struct != nil {
			for _, fl := range nt.Struct.Fields {
				if needsPubkey(cache, fl.Type) {
					needsKey = true
				}
			}
		}
		if nt.Enum != nil {
			for _, v := range nt.Enum.Variants {
				for _, fl := range v.Fields {
					if needsPubkey(cache, fl.Type) {
						needsKey = true
					}
				}
			}
		}
	}
	if needsKey {
		f.Use(pubkeyImport)
	}

	for _, nt := range types {
		f.Add(namedTypeItem(nt))
	}
	return f.Render()
}

func namedTypeItem(nt model.NamedType) rustgen.Code {
	name := util.ToPascalCase(nt.Name)
	switch {
	case nt.Struct != nil:
		fields := make([]rustgen.Code, 0, len(nt.Struct.Fields))
		for _, fl := range nt.Struct.Fields {
			fields = append(fields, structFieldLine(fl))
		}
		return groupWithDocs(nt.Docs,
			rustgen.Derive(derivedTraits...),
			rustgen.Raw(serdeCfgAttr),
			rustgen.Pub(rustgen.Struct(name, rustgen.Block(fields...))),
		)
	case nt.Enum != nil:
		variants := make([]rustgen.Code, 0, len(nt.Enum.Variants))
		for _, v := range nt.Enum.Variants {
			variants = append(variants, enumVariantLine(v))
		}
		return groupWithDocs(nt.Docs,
			rustgen.Derive(derivedTraits...),
			rustgen.Raw(serdeCfgAttr),
			rustgen.Pub(rustgen.Enum(name, rustgen.Block(variants...))),
		)
	default:
		return rustgen.Raw(fmt.Sprintf("// %s: empty typedef", name))
	}
}

func structFieldLine(fl model.FieldDef) rustgen.Code {
	return rustgen.Field(util.EscapeRustIdent(util.ToSnakeCase(fl.Name)), fl.Type.String())
}

func enumVariantLine(v model.EnumVariant) rustgen.Code {
	name := util.ToPascalCase(v.Name)
	if len(v.Fields) == 0 {
		return rustgen.Raw(name + ",")
	}
	if v.Named {
		fields := make([]rustgen.Code, 0, len(v.Fields))
		for _, fl := range v.Fields {
			fields = append(fields, structFieldLine(fl))
		}
		block := rustgen.Block(fields...)
		return rustgen.Raw(name + " " + block.Render() + ",")
	}
	types := make([]string, len(v.Fields))
	for i, fl := range v.Fields {
		types[i] = fl.Type.String()
	}
	return rustgen.Raw(fmt.Sprintf("%s(%s),", name, joinTypes(types)))
}

func joinTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

// groupWithDocs renders a doc comment followed by the remaining items, each
// on its own line, omitting the doc comment entirely when docs is empty.
func groupWithDocs(docs []string, items ...rustgen.Code) rustgen.Code {
	all := make([]rustgen.Code, 0, len(items)+1)
	if len(docs) > 0 {
		all = append(all, rustgen.DocComment(docs...))
	}
	all = append(all, items...)
	return joinLines(all)
}

func joinLines(items []rustgen.Code) rustgen.Code {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.Render()
	}
	return rustgen.Raw(joinNewline(lines))
}

func joinNewline(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
