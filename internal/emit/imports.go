package emit

import "github.com/lugondev/solores-go/internal/typeexpr"

// commonImports are the `use` paths nearly every emitted module needs;
// module-specific emitters add to this set based on what their own items
// actually reference, so the generated modules never carry unused imports.
func commonImports() []string {
	return []string{
		"borsh::{BorshDeserialize, BorshSerialize}",
	}
}

// pubkeyImport is added only by modules whose types reference a Pubkey,
// decided via typeexpr.QueryCache.ReferencesPublicKey rather than assumed.
const pubkeyImport = "solana_program::pubkey::Pubkey"

// needsPubkey reports whether any of tes references a Pubkey.
func needsPubkey(cache *typeexpr.QueryCache, tes ...*typeexpr.TypeExpr) bool {
	for _, te := range tes {
		if te != nil && cache.ReferencesPublicKey(te) {
			return true
		}
	}
	return false
}
