package model

import (
	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/discriminator"
	"github.com/lugondev/solores-go/internal/idl"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

// NormalizeShank lowers an idl.ShankDocument into a dialect-neutral
// Program. Shank never derives a discriminator: instructions carry an
// explicit one-byte discriminant, and accounts carry whatever byte string
// (if any) the IDL declares verbatim.
func NormalizeShank(doc *idl.ShankDocument, logger *diag.Logger) (*Program, error) {
	p := &Program{
		Name:    doc.Name,
		Version: doc.Version,
		Address: doc.Address,
		Dialect: idl.DialectShank,
	}

	for _, t := range doc.Types {
		nt, err := shankNamedType(t)
		if err != nil {
			return nil, err
		}
		p.Types = append(p.Types, nt)
	}

	for _, a := range doc.Accounts {
		sb := StructBody{}
		for _, f := range a.Fields {
			fd, err := fieldFromJSON(f)
			if err != nil {
				return nil, err
			}
			sb.Fields = append(sb.Fields, fd)
		}
		nt := NamedType{Name: a.Name, Docs: a.Docs, Struct: &sb}
		p.Accounts = append(p.Accounts, AccountDef{
			NamedType:     nt,
			Discriminator: discriminator.ShankAccountDiscriminator(a.Discriminator),
		})
	}

	for _, ix := range doc.Instructions {
		id := InstructionDef{
			Name:          ix.Name,
			Docs:          ix.Docs,
			Discriminator: []byte{discriminator.ShankInstructionDiscriminator(ix.Discriminant)},
		}
		for _, e := range ix.Accounts {
			id.Accounts = append(id.Accounts, AccountEntry{Leaf: &AccountLeaf{
				Name:     e.Name,
				Docs:     e.Docs,
				Writable: e.Writable,
				Signer:   e.Signer,
				Optional: e.Optional,
				Address:  e.Address,
				PDA:      pdaFromJSON(e.Pda),
			}})
		}
		for _, a := range ix.Args {
			fd, err := fieldFromJSON(a)
			if err != nil {
				return nil, err
			}
			id.Args = append(id.Args, fd)
		}
		p.Instructions = append(p.Instructions, id)
	}

	for i, e := range doc.Errors {
		code := i
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

func shankNamedType(t idl.ShankTypedef) (NamedType, error) {
	nt := NamedType{Name: t.Name, Docs: t.Docs}
	if t.IsEnum() {
		eb := EnumBody{}
		for _, v := range t.Variants {
			variant, err := anchorEnumVariant(v)
			if err != nil {
				return nt, err
			}
			eb.Variants = append(eb.Variants, variant)
		}
		nt.Enum = &eb
		return nt, nil
	}
	sb := StructBody{}
	for _, f := range t.Fields {
		fd, err := fieldFromJSON(f)
		if err != nil {
			return nt, err
		}
		sb.Fields = append(sb.Fields, fd)
	}
	nt.Struct = &sb
	return nt, nil
}
