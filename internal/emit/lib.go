package emit

import (
	"fmt"
	"strings"
)

// DefaultProgramAddress is emitted, with a warning through the caller's
// diag.Logger, whenever neither the IDL nor a CLI override supplies a
// program address. It is the System Program id, an address no deployed
// user program can collide with.
const DefaultProgramAddress = "11111111111111111111111111111111"

// Lib renders src/lib.rs: the declare_id! call followed by a conditional
// `pub mod X; pub use X::*;` pair per populated module, in a fixed
// accounts/instructions/typedefs/errors/constants order.
func Lib(programAddress string, hasAccounts, hasInstructions, hasTypedefs, hasErrors, hasConstants bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "solana_program::declare_id!(%q);\n", programAddress)
	if hasAccounts {
		b.WriteString("\npub mod accounts;\npub use accounts::*;\n")
	}
	if hasInstructions {
		b.WriteString("\npub mod instructions;\npub use instructions::*;\n")
	}
	if hasTypedefs {
		b.WriteString("\npub mod typedefs;\npub use typedefs::*;\n")
	}
	if hasErrors {
		b.WriteString("\npub mod errors;\npub use errors::*;\n")
	}
	if hasConstants {
		b.WriteString("\npub mod constants;\npub use constants::*;\n")
	}
	return b.String()
}
