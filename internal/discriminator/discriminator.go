// Package discriminator computes the two wire-prefix schemes that let a
// deserializer reject data belonging to the wrong account or instruction:
// Anchor's derived 8-byte sha256 prefix and Shank's declared 1-byte tag.
package discriminator

import (
	"crypto/sha256"

	"github.com/lugondev/solores-go/internal/util"
)

// AnchorAccountDiscriminator computes the 8-byte discriminator Anchor
// prepends to every account's serialized bytes: the first 8 bytes of
// sha256("account:Name"), where Name is the IDL account name converted to
// PascalCase.
func AnchorAccountDiscriminator(typeName string) [8]byte {
	return anchorDiscm("account:" + util.ToPascalCase(typeName))
}

// AnchorInstructionDiscriminator computes the 8-byte discriminator Anchor
// prepends to every instruction's serialized arguments: the first 8 bytes
// of sha256("global:snake_case_name").
func AnchorInstructionDiscriminator(instructionName string) [8]byte {
	return anchorDiscm("global:" + util.ToSnakeCase(instructionName))
}

func anchorDiscm(preimage string) [8]byte {
	sum := sha256.Sum256([]byte(preimage))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

// ShankInstructionDiscriminator returns, as a single byte, the discriminant
// the IDL declares for an instruction; Shank never derives it.
func ShankInstructionDiscriminator(discriminant int) byte {
	return byte(discriminant)
}

// ShankAccountDiscriminator returns an account's discriminator bytes
// verbatim as declared in the IDL (often 8 bytes, sometimes omitted
// entirely) — unlike Anchor, Shank never derives this value from the name.
func ShankAccountDiscriminator(declared []byte) []byte {
	if declared == nil {
		return nil
	}
	out := make([]byte, len(declared))
	copy(out, declared)
	return out
}
