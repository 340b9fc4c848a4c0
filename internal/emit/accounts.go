package emit

import (
	"fmt"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/rustgen"
	"github.com/lugondev/solores-go/internal/typeexpr"
	"github.com/lugondev/solores-go/internal/util"
)

// Accounts renders src/accounts.rs: per account, a discriminator constant,
// the inner struct/enum (same shape typedefs.go emits), and a wrapper type
// whose serialize prepends the discriminator and whose deserialize checks
// and consumes it, mirroring the IxData newtype the instructions emitter
// writes for instruction data.
func Accounts(accounts []model.AccountDef, cache *typeexpr.QueryCache) string {
	f := rustgen.NewFile()
	f.Use(commonImports()[0])

	needsKey := false
	for _, a := range accounts {
		if namedTypeReferencesPubkey(a.NamedType, cache) {
			needsKey = true
		}
	}
	if needsKey {
		f.Use(pubkeyImport)
	}

	for _, a := range accounts {
		f.Add(accountItem(a))
	}
	return f.Render()
}

func namedTypeReferencesPubkey(nt model.NamedType, cache *typeexpr.QueryCache) bool {
	if nt.Struct != nil {
		for _, fl := range nt.Struct.Fields {
			if needsPubkey(cache, fl.Type) {
				return true
			}
		}
	}
	if nt.Enum != nil {
		for _, v := range nt.Enum.Variants {
			for _, fl := range v.Fields {
				if needsPubkey(cache, fl.Type) {
					return true
				}
			}
		}
	}
	return false
}

func accountItem(a model.AccountDef) rustgen.Code {
	name := util.ToPascalCase(a.Name)
	discmIdent := util.ToScreamingSnakeCase(a.Name) + "_ACCOUNT_DISCM"
	discm := a.Discriminator

	lines := []string{}
	lines = append(lines, rustgen.Const(discmIdent, fmt.Sprintf("[u8; %d]", len(discm)), rustgen.ByteArrayLit(discm)).Render())
	lines = append(lines, "")
	lines = append(lines, namedTypeItem(a.NamedType).Render())
	lines = append(lines, "")
	lines = append(lines, accountWrapper(name, discmIdent, len(discm)).Render())
	return rustgen.Raw(joinNewline(lines))
}

func accountWrapper(name, discmIdent string, discmLen int) rustgen.Code {
	wrapperName := name + "Account"
	arrTy := fmt.Sprintf("[u8; %d]", discmLen)

	serializeBody := fmt.Sprintf(
		"fn serialize<W: std::io::Write>(&self, writer: &mut W) -> std::io::Result<()> {\n"+
			"    writer.write_all(&%s)?;\n"+
			"    self.0.serialize(writer)\n"+
			"}", discmIdent)
	deserializeBody := fmt.Sprintf(
		"pub fn deserialize(buf: &mut &[u8]) -> std::io::Result<Self> {\n"+
			"    let maybe_discm = <%s>::deserialize(buf)?;\n"+
			"    if maybe_discm != %s {\n"+
			"        return Err(std::io::Error::new(\n"+
			"            std::io::ErrorKind::Other,\n"+
			"            format!(\"discm does not match. Expected: {:?}. Received: {:?}\", %s, maybe_discm),\n"+
			"        ));\n"+
			"    }\n"+
			"    Ok(Self(%s::deserialize(buf)?))\n"+
			"}", arrTy, discmIdent, discmIdent, name)

	lines := []string{
		"#[derive(Clone, Debug, PartialEq)]",
		fmt.Sprintf("pub struct %s(pub %s);", wrapperName, name),
		"",
		fmt.Sprintf("impl BorshSerialize for %s {", wrapperName),
		indent(serializeBody, 1),
		"}",
		"",
		fmt.Sprintf("impl %s {", wrapperName),
		indent(deserializeBody, 1),
		"}",
	}
	return rustgen.Raw(joinNewline(lines))
}

func indent(s string, levels int) string {
	prefix := ""
	for i := 0; i < levels; i++ {
		prefix += "    "
	}
	lines := splitLines(s)
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = prefix + l
	}
	return joinNewline(lines)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
