package emit

import (
	"strings"
	"testing"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

func TestTypedefsStructAndEnum(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	types := []model.NamedType{
		{
			Name: "Counter",
			Struct: &model.StructBody{Fields: []model.FieldDef{
				{Name: "count", Type: typeexpr.NewPrimitive(typeexpr.PrimU64)},
				{Name: "owner", Type: typeexpr.PublicKey()},
			}},
		},
		{
			Name: "Side",
			Enum: &model.EnumBody{Variants: []model.EnumVariant{
				{Name: "Bid"},
				{Name: "Ask"},
			}},
		},
	}

	out := Typedefs(types, cache)

	if !strings.Contains(out, "pub struct Counter") {
		t.Errorf("missing struct declaration:\n%s", out)
	}
	if !strings.Contains(out, "pub count: u64,") {
		t.Errorf("missing count field:\n%s", out)
	}
	if !strings.Contains(out, "pub owner: Pubkey,") {
		t.Errorf("missing owner field:\n%s", out)
	}
	if !strings.Contains(out, "pub enum Side") {
		t.Errorf("missing enum declaration:\n%s", out)
	}
	if !strings.Contains(out, "Bid,") || !strings.Contains(out, "Ask,") {
		t.Errorf("missing unit variants:\n%s", out)
	}
}

// A module imports the Pubkey type iff some member
// transitively references it.
func TestTypedefsImportMinimality(t *testing.T) {
	cache := typeexpr.NewQueryCache()

	withKey := []model.NamedType{{
		Name:   "HasKey",
		Struct: &model.StructBody{Fields: []model.FieldDef{{Name: "owner", Type: typeexpr.PublicKey()}}},
	}}
	if out := Typedefs(withKey, cache); !strings.Contains(out, "use solana_program::pubkey::Pubkey;") {
		t.Errorf("expected pubkey import when a field references PublicKey, got:\n%s", out)
	}

	withoutKey := []model.NamedType{{
		Name:   "NoKey",
		Struct: &model.StructBody{Fields: []model.FieldDef{{Name: "count", Type: typeexpr.NewPrimitive(typeexpr.PrimU64)}}},
	}}
	if out := Typedefs(withoutKey, cache); strings.Contains(out, "solana_program::pubkey") {
		t.Errorf("expected no pubkey import when no field references PublicKey, got:\n%s", out)
	}
}

func TestTypedefsTupleVariant(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	types := []model.NamedType{{
		Name: "Event",
		Enum: &model.EnumBody{Variants: []model.EnumVariant{
			{Name: "Deposit", Fields: []model.FieldDef{{Type: typeexpr.NewPrimitive(typeexpr.PrimU64)}}},
		}},
	}}
	out := Typedefs(types, cache)
	if !strings.Contains(out, "Deposit(u64),") {
		t.Errorf("expected tuple-variant rendering, got:\n%s", out)
	}
}

func TestTypedefsStructVariant(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	types := []model.NamedType{{
		Name: "Event",
		Enum: &model.EnumBody{Variants: []model.EnumVariant{
			{Name: "Deposit", Named: true, Fields: []model.FieldDef{{Name: "amount", Type: typeexpr.NewPrimitive(typeexpr.PrimU64)}}},
		}},
	}}
	out := Typedefs(types, cache)
	if !strings.Contains(out, "Deposit {") || !strings.Contains(out, "pub amount: u64,") {
		t.Errorf("expected struct-variant rendering, got:\n%s", out)
	}
}
