package model

import (
	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/discriminator"
	"github.com/lugondev/solores-go/internal/idl"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

// NormalizeAnchor lowers an idl.AnchorDocument into a dialect-neutral
// Program, computing every Anchor discriminator along the way.
func NormalizeAnchor(doc *idl.AnchorDocument, logger *diag.Logger) (*Program, error) {
	p := &Program{
		Name:    doc.Name,
		Version: doc.Version,
		Address: doc.Address,
		Dialect: idl.DialectAnchor,
	}

	for _, t := range doc.Types {
		nt, err := anchorNamedType(t.Name, t.Docs, t.Type)
		if err != nil {
			return nil, err
		}
		p.Types = append(p.Types, nt)
	}

	for _, a := range doc.Accounts {
		nt, err := anchorNamedType(a.Name, a.Docs, a.Type)
		if err != nil {
			return nil, err
		}
		discm := a.Discriminator
		if discm == nil {
			derived := discriminator.AnchorAccountDiscriminator(a.Name)
			discm = derived[:]
		}
		p.Accounts = append(p.Accounts, AccountDef{NamedType: nt, Discriminator: discm})
	}

	for _, ix := range doc.Instructions {
		id, err := anchorInstruction(ix)
		if err != nil {
			return nil, err
		}
		p.Instructions = append(p.Instructions, id)
	}

	for i, e := range doc.Errors {
		code := 6000 + i
		if e.Code != nil {
			code = *e.Code
		}
		p.Errors = append(p.Errors, ErrorDef{Name: e.Name, Code: code, Msg: e.Msg})
	}

	for _, c := range doc.Constants {
		te, err := typeexpr.FromJSON(c.Type)
		if err != nil {
			return nil, err
		}
		p.Constants = append(p.Constants, ConstantDef{Name: c.Name, Type: te, Value: c.Value, Docs: c.Docs})
	}

	return p, nil
}

func anchorNamedType(name string, docs []string, body idl.AnchorTypeDefBody) (NamedType, error) {
	nt := NamedType{Name: name, Docs: docs}
	switch body.Kind {
	case "enum":
		eb := EnumBody{}
		for _, v := range body.Variants {
			variant, err := anchorEnumVariant(v)
			if err != nil {
				return nt, err
			}
			eb.Variants = append(eb.Variants, variant)
		}
		nt.Enum = &eb
	default: // "struct", or absent (bare field list)
		sb := StructBody{}
		for _, f := range body.Fields {
			fd, err := fieldFromJSON(f)
			if err != nil {
				return nt, err
			}
			sb.Fields = append(sb.Fields, fd)
		}
		nt.Struct = &sb
	}
	return nt, nil
}

func anchorEnumVariant(v idl.AnchorEnumVariant) (EnumVariant, error) {
	ev := EnumVariant{Name: v.Name}
	if len(v.Fields) == 0 {
		return ev, nil
	}
	named := v.Fields[0].Name != ""
	ev.Named = named
	for _, f := range v.Fields {
		fd, err := fieldFromJSON(f)
		if err != nil {
			return ev, err
		}
		ev.Fields = append(ev.Fields, fd)
	}
	return ev, nil
}

func fieldFromJSON(f idl.FieldJSON) (FieldDef, error) {
	te, err := typeexpr.FromJSON(f.Type)
	if err != nil {
		return FieldDef{}, err
	}
	return FieldDef{Name: f.Name, Type: te, Docs: f.Docs}, nil
}

func anchorInstruction(ix idl.AnchorInstruction) (InstructionDef, error) {
	id := InstructionDef{Name: ix.Name, Docs: ix.Docs}

	discm := discriminator.AnchorInstructionDiscriminator(ix.Name)
	id.Discriminator = discm[:]

	entries, err := anchorAccountEntries(ix.Accounts)
	if err != nil {
		return id, err
	}
	id.Accounts = entries

	for _, a := range ix.Args {
		fd, err := fieldFromJSON(a)
		if err != nil {
			return id, err
		}
		id.Args = append(id.Args, fd)
	}
	return id, nil
}

func anchorAccountEntries(entries []idl.AnchorAccountEntry) ([]AccountEntry, error) {
	out := make([]AccountEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsGroup() {
			nested, err := anchorAccountEntries(e.Accounts)
			if err != nil {
				return nil, err
			}
			out = append(out, AccountEntry{Group: &AccountGroup{Name: e.Name, Docs: e.Docs, Entries: nested}})
			continue
		}
		out = append(out, AccountEntry{Leaf: &AccountLeaf{
			Name:     e.Name,
			Docs:     e.Docs,
			Writable: e.IsWritable(),
			Signer:   e.MustSign(),
			Optional: e.MayBeOmitted(),
			Address:  e.Address,
			PDA:      pdaFromJSON(e.Pda),
		}})
	}
	return out, nil
}
