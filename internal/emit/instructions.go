package emit

import (
	"fmt"
	"strings"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/rustgen"
	"github.com/lugondev/solores-go/internal/typeexpr"
	"github.com/lugondev/solores-go/internal/util"
)

// Instructions renders src/instructions.rs: per instruction, the full
// family of cooperating items (accounts-len constant, Accounts and Keys
// structs, the positional conversions between them, the Args struct, the
// discriminator-prefixed IxData newtype, the instruction builder, the
// invoke/invoke_signed wrappers, and the key and privilege verifiers),
// plus one program-level enum dispatching on the discriminator prefix.
func Instructions(instructions []model.InstructionDef, cache *typeexpr.QueryCache, logger *diag.Logger) string {
	f := rustgen.NewFile()
	f.Use("borsh::{BorshDeserialize, BorshSerialize}")
	f.Use("solana_program::account_info::AccountInfo")
	f.Use("solana_program::instruction::{AccountMeta, Instruction}")
	f.Use("solana_program::program::{invoke, invoke_signed}")
	f.Use("solana_program::program_error::ProgramError")
	f.Use("solana_program::pubkey::Pubkey")

	needsCrateStar := false
	for _, ix := range instructions {
		for _, a := range ix.Args {
			if needsUserType(cache, a.Type) {
				needsCrateStar = true
			}
		}
	}
	if needsCrateStar {
		f.Use("crate::*")
	}

	for _, ix := range instructions {
		f.Add(instructionFamily(ix, logger))
	}

	if len(instructions) > 0 {
		f.Add(programInstructionEnum(instructions))
	}

	return f.Render()
}

// needsUserType reports whether any of tes transitively references a
// user-declared typedef, the signal that decides whether a module needs
// `crate::*` to resolve sibling names.
func needsUserType(cache *typeexpr.QueryCache, tes ...*typeexpr.TypeExpr) bool {
	for _, te := range tes {
		if te != nil && cache.ReferencesUserType(te) {
			return true
		}
	}
	return false
}

func instructionFamily(ix model.InstructionDef, logger *diag.Logger) rustgen.Code {
	name := util.ToPascalCase(ix.Name)
	snake := util.ToSnakeCase(ix.Name)
	shouty := util.ToScreamingSnakeCase(ix.Name)

	accountsIdent := name + "Accounts"
	keysIdent := name + "Keys"
	argsIdent := name + "IxArgs"
	ixDataIdent := name + "IxData"
	lenIdent := shouty + "_IX_ACCOUNTS_LEN"
	discmIdent := shouty + "_IX_DISCM"
	ixFn := snake + "_ix"
	invokeFn := snake + "_invoke"
	invokeSignedFn := snake + "_invoke_signed"
	verifyKeysFn := snake + "_verify_account_keys"
	verifyPrivFn := snake + "_verify_account_privileges"

	flattened := model.FlattenAccounts(ix.Accounts, logger)
	slots := flattened.Slots
	fieldNames := make([]string, len(flattened.Fields))
	for i, f := range flattened.Fields {
		fieldNames[i] = util.EscapeRustIdent(util.ToSnakeCase(f.FieldName))
	}

	var b strings.Builder
	writeDocLines(&b, ix.Docs)

	fmt.Fprintf(&b, "pub const %s: usize = %d;\n\n", lenIdent, len(slots))

	b.WriteString(structLiteral("#[derive(Copy, Clone, Debug)]", accountsIdent+"<'me, 'info>", fieldNames, func(n string) string {
		return fmt.Sprintf("pub %s: &'me AccountInfo<'info>", n)
	}))
	b.WriteString("\n\n")

	b.WriteString(structLiteral("#[derive(Copy, Clone, Debug, PartialEq)]", keysIdent, fieldNames, func(n string) string {
		return fmt.Sprintf("pub %s: Pubkey", n)
	}))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "impl From<&%s<'_, '_>> for %s {\n", accountsIdent, keysIdent)
	fmt.Fprintf(&b, "    fn from(accounts: &%s) -> Self {\n", accountsIdent)
	b.WriteString("        Self {\n")
	for _, n := range fieldNames {
		fmt.Fprintf(&b, "            %s: *accounts.%s.key,\n", n, n)
	}
	b.WriteString("        }\n    }\n}\n\n")

	fmt.Fprintf(&b, "impl From<&%s> for [AccountMeta; %s] {\n", keysIdent, lenIdent)
	fmt.Fprintf(&b, "    fn from(keys: &%s) -> Self {\n", keysIdent)
	b.WriteString("        [\n")
	for _, slot := range slots {
		call := "new_readonly"
		if slot.Leaf.Writable {
			call = "new"
		}
		fmt.Fprintf(&b, "            AccountMeta::%s(keys.%s, %t),\n", call, util.EscapeRustIdent(util.ToSnakeCase(slot.FieldName)), slot.Leaf.Signer)
	}
	b.WriteString("        ]\n    }\n}\n\n")

	fmt.Fprintf(&b, "impl From<[Pubkey; %s]> for %s {\n", lenIdent, keysIdent)
	b.WriteString(fmt.Sprintf("    fn from(pubkeys: [Pubkey; %s]) -> Self {\n", lenIdent))
	b.WriteString("        Self {\n")
	for i, n := range fieldNames {
		fmt.Fprintf(&b, "            %s: pubkeys[%d],\n", n, i)
	}
	b.WriteString("        }\n    }\n}\n\n")

	fmt.Fprintf(&b, "impl<'info> From<&%s<'_, 'info>> for [AccountInfo<'info>; %s] {\n", accountsIdent, lenIdent)
	fmt.Fprintf(&b, "    fn from(accounts: &%s<'_, 'info>) -> Self {\n", accountsIdent)
	b.WriteString("        [\n")
	for _, slot := range slots {
		fmt.Fprintf(&b, "            accounts.%s.clone(),\n", util.EscapeRustIdent(util.ToSnakeCase(slot.FieldName)))
	}
	b.WriteString("        ]\n    }\n}\n\n")

	fmt.Fprintf(&b, "impl<'me, 'info> From<&'me [AccountInfo<'info>; %s]> for %s<'me, 'info> {\n", lenIdent, accountsIdent)
	fmt.Fprintf(&b, "    fn from(arr: &'me [AccountInfo<'info>; %s]) -> Self {\n", lenIdent)
	b.WriteString("        Self {\n")
	for i, slot := range slots {
		fmt.Fprintf(&b, "            %s: &arr[%d],\n", util.EscapeRustIdent(util.ToSnakeCase(slot.FieldName)), i)
	}
	b.WriteString("        }\n    }\n}\n\n")

	b.WriteString(argsStruct(argsIdent, ix.Args))
	b.WriteString("\n\n")

	discmLen := len(ix.Discriminator)
	arrTy := fmt.Sprintf("[u8; %d]", discmLen)
	fmt.Fprintf(&b, "pub const %s: %s = %s;\n\n", discmIdent, arrTy, rustgen.ByteArrayLit(ix.Discriminator))

	fmt.Fprintf(&b, "#[derive(Clone, Debug, PartialEq)]\npub struct %s(pub %s);\n\n", ixDataIdent, argsIdent)
	fmt.Fprintf(&b, "impl From<%s> for %s {\n    fn from(args: %s) -> Self {\n        Self(args)\n    }\n}\n\n", argsIdent, ixDataIdent, argsIdent)
	fmt.Fprintf(&b, "impl BorshSerialize for %s {\n", ixDataIdent)
	b.WriteString("    fn serialize<W: std::io::Write>(&self, writer: &mut W) -> std::io::Result<()> {\n")
	fmt.Fprintf(&b, "        writer.write_all(&%s)?;\n", discmIdent)
	b.WriteString("        self.0.serialize(writer)\n    }\n}\n\n")
	fmt.Fprintf(&b, "impl %s {\n", ixDataIdent)
	fmt.Fprintf(&b, "    pub fn deserialize(buf: &mut &[u8]) -> std::io::Result<Self> {\n")
	fmt.Fprintf(&b, "        let maybe_discm = <%s>::deserialize(buf)?;\n", arrTy)
	fmt.Fprintf(&b, "        if maybe_discm != %s {\n", discmIdent)
	fmt.Fprintf(&b, "            return Err(std::io::Error::new(\n")
	fmt.Fprintf(&b, "                std::io::ErrorKind::Other,\n")
	fmt.Fprintf(&b, "                format!(\"discm does not match. Expected: {:?}. Received: {:?}\", %s, maybe_discm),\n", discmIdent)
	b.WriteString("            ));\n        }\n")
	fmt.Fprintf(&b, "        Ok(Self(%s::deserialize(buf)?))\n    }\n}\n\n", argsIdent)

	fmt.Fprintf(&b, "pub fn %s<K: Into<%s>, A: Into<%s>>(\n    accounts: K,\n    args: A,\n) -> std::io::Result<Instruction> {\n", ixFn, keysIdent, argsIdent)
	fmt.Fprintf(&b, "    let keys: %s = accounts.into();\n", keysIdent)
	fmt.Fprintf(&b, "    let metas: [AccountMeta; %s] = (&keys).into();\n", lenIdent)
	fmt.Fprintf(&b, "    let args_full: %s = args.into();\n", argsIdent)
	fmt.Fprintf(&b, "    let data: %s = args_full.into();\n", ixDataIdent)
	b.WriteString("    Ok(Instruction {\n        program_id: crate::ID,\n        accounts: Vec::from(metas),\n        data: data.try_to_vec()?,\n    })\n}\n\n")

	fmt.Fprintf(&b, "pub fn %s<'info, A: Into<%s>>(\n    accounts: &%s<'_, 'info>,\n    args: A,\n) -> Result<(), ProgramError> {\n", invokeFn, argsIdent, accountsIdent)
	fmt.Fprintf(&b, "    let ix = %s(accounts, args)?;\n", ixFn)
	fmt.Fprintf(&b, "    let account_info: [AccountInfo<'info>; %s] = accounts.into();\n", lenIdent)
	b.WriteString("    invoke(&ix, &account_info)\n}\n\n")

	fmt.Fprintf(&b, "pub fn %s<'info, A: Into<%s>>(\n    accounts: &%s<'_, 'info>,\n    args: A,\n    seeds: &[&[&[u8]]],\n) -> Result<(), ProgramError> {\n", invokeSignedFn, argsIdent, accountsIdent)
	fmt.Fprintf(&b, "    let ix = %s(accounts, args)?;\n", ixFn)
	fmt.Fprintf(&b, "    let account_info: [AccountInfo<'info>; %s] = accounts.into();\n", lenIdent)
	b.WriteString("    invoke_signed(&ix, &account_info, seeds)\n}\n\n")

	fmt.Fprintf(&b, "pub fn %s(\n    accounts: &%s<'_, '_>,\n    keys: &%s,\n) -> Result<(), (Pubkey, Pubkey)> {\n", verifyKeysFn, accountsIdent, keysIdent)
	if len(slots) > 0 {
		b.WriteString("    for (actual, expected) in [\n")
		for _, slot := range slots {
			fn := util.EscapeRustIdent(util.ToSnakeCase(slot.FieldName))
			fmt.Fprintf(&b, "        (*accounts.%s.key, keys.%s),\n", fn, fn)
		}
		b.WriteString("    ] {\n        if actual != expected {\n            return Err((actual, expected));\n        }\n    }\n")
	}
	b.WriteString("    Ok(())\n}\n\n")

	fmt.Fprintf(&b, "pub fn %s(\n    accounts: &%s<'_, '_>,\n) -> Result<(), ProgramError> {\n", verifyPrivFn, accountsIdent)
	writableFields := positionalFieldNames(slots, func(l model.AccountLeaf) bool { return l.Writable })
	if len(writableFields) > 0 {
		b.WriteString("    for should_be_writable in [\n")
		for _, n := range writableFields {
			fmt.Fprintf(&b, "        accounts.%s,\n", n)
		}
		b.WriteString("    ] {\n        if !should_be_writable.is_writable {\n            return Err(ProgramError::InvalidAccountData);\n        }\n    }\n")
	}
	signerFields := positionalFieldNames(slots, func(l model.AccountLeaf) bool { return l.Signer })
	if len(signerFields) > 0 {
		b.WriteString("    for should_be_signer in [\n")
		for _, n := range signerFields {
			fmt.Fprintf(&b, "        accounts.%s,\n", n)
		}
		b.WriteString("    ] {\n        if !should_be_signer.is_signer {\n            return Err(ProgramError::MissingRequiredSignature);\n        }\n    }\n")
	}
	b.WriteString("    Ok(())\n}")

	return rustgen.Raw(b.String())
}

// positionalFieldNames returns, in positional order, the deduplicated field
// name for every slot matching pred. A field appears once in the privilege
// check even if two positions share it, since the check only reads
// `accounts.<field>`, not an array.
func positionalFieldNames(slots []model.FlatSlot, pred func(model.AccountLeaf) bool) []string {
	seen := make(map[string]bool, len(slots))
	var out []string
	for _, s := range slots {
		if !pred(s.Leaf) {
			continue
		}
		n := util.EscapeRustIdent(util.ToSnakeCase(s.FieldName))
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func structLiteral(attr, nameWithGenerics string, fieldNames []string, fieldLine func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\npub struct %s {\n", attr, nameWithGenerics)
	for _, n := range fieldNames {
		fmt.Fprintf(&b, "    %s,\n", fieldLine(n))
	}
	b.WriteString("}")
	return b.String()
}

func argsStruct(name string, args []model.FieldDef) string {
	var b strings.Builder
	b.WriteString("#[derive(BorshDeserialize, BorshSerialize, Clone, Debug, PartialEq)]\n")
	b.WriteString(serdeCfgAttr + "\n")
	fmt.Fprintf(&b, "pub struct %s {\n", name)
	for _, a := range args {
		for _, d := range a.Docs {
			fmt.Fprintf(&b, "    /// %s\n", d)
		}
		fmt.Fprintf(&b, "    pub %s: %s,\n", util.EscapeRustIdent(util.ToSnakeCase(a.Name)), a.Type.String())
	}
	b.WriteString("}")
	return b.String()
}

func writeDocLines(b *strings.Builder, docs []string) {
	for _, d := range docs {
		fmt.Fprintf(b, "/// %s\n", d)
	}
}

// programInstructionEnum renders the one enum enumerating every
// instruction (each variant carrying its Args), with serialize/deserialize
// dispatching on the discriminator prefix. An unrecognized discriminator
// surfaces as an io::Error, mirroring the per-instruction IxData mismatch
// pattern rather than inventing a second error-reporting convention in the
// same file.
func programInstructionEnum(instructions []model.InstructionDef) rustgen.Code {
	// Every instruction in one IDL shares a dialect, so every discriminator
	// is the same width (8 bytes Anchor, 1 byte Shank).
	discmLen := len(instructions[0].Discriminator)
	discmTy := fmt.Sprintf("[u8; %d]", discmLen)

	var b strings.Builder
	b.WriteString("#[derive(Clone, Debug, PartialEq)]\npub enum ProgramInstruction {\n")
	for _, ix := range instructions {
		name := util.ToPascalCase(ix.Name)
		fmt.Fprintf(&b, "    %s(%sIxArgs),\n", name, name)
	}
	b.WriteString("}\n\n")

	b.WriteString("impl ProgramInstruction {\n")
	b.WriteString("    pub fn deserialize(buf: &mut &[u8]) -> std::io::Result<Self> {\n")
	fmt.Fprintf(&b, "        let discm = <%s>::deserialize(buf)?;\n", discmTy)
	b.WriteString("        match discm {\n")
	for _, ix := range instructions {
		name := util.ToPascalCase(ix.Name)
		discmIdent := util.ToScreamingSnakeCase(ix.Name) + "_IX_DISCM"
		fmt.Fprintf(&b, "            %s => Ok(Self::%s(%sIxArgs::deserialize(buf)?)),\n", discmIdent, name, name)
	}
	b.WriteString("            _ => Err(std::io::Error::new(\n                std::io::ErrorKind::Other,\n                format!(\"unknown instruction discriminator: {:?}\", discm),\n            )),\n")
	b.WriteString("        }\n    }\n\n")

	b.WriteString("    pub fn serialize<W: std::io::Write>(&self, writer: &mut W) -> std::io::Result<()> {\n        match self {\n")
	for _, ix := range instructions {
		name := util.ToPascalCase(ix.Name)
		discmIdent := util.ToScreamingSnakeCase(ix.Name) + "_IX_DISCM"
		fmt.Fprintf(&b, "            Self::%s(args) => {\n                writer.write_all(&%s)?;\n                args.serialize(writer)\n            }\n", name, discmIdent)
	}
	b.WriteString("        }\n    }\n}")
	return rustgen.Raw(b.String())
}
