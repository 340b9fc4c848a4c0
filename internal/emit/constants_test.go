package emit

import (
	"strings"
	"testing"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

func TestConstantsRendersPubConst(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	constants := []model.ConstantDef{
		{Name: "seedPrefix", Type: typeexpr.NewPrimitive(typeexpr.PrimU64), Value: "42"},
	}
	out := Constants(constants, cache)
	if !strings.Contains(out, "pub const SEED_PREFIX: u64 = 42;") {
		t.Errorf("expected a screaming-snake-case pub const, got:\n%s", out)
	}
	if strings.Contains(out, "solana_program::pubkey") {
		t.Errorf("expected no pubkey import for a non-pubkey constant, got:\n%s", out)
	}
}

// The pubkey import is
// only added when a constant's type actually references PublicKey.
func TestConstantsImportMinimality(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	constants := []model.ConstantDef{
		{Name: "authorityKey", Type: typeexpr.PublicKey(), Value: `Pubkey::new_from_array([0u8; 32])`},
	}
	out := Constants(constants, cache)
	if !strings.Contains(out, "use solana_program::pubkey::Pubkey;") {
		t.Errorf("expected a pubkey import for a pubkey-typed constant, got:\n%s", out)
	}
	if !strings.Contains(out, "pub const AUTHORITY_KEY: Pubkey") {
		t.Errorf("expected the constant declared with type Pubkey, got:\n%s", out)
	}
}
