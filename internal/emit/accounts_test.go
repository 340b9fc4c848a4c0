package emit

import (
	"strings"
	"testing"

	"github.com/lugondev/solores-go/internal/discriminator"
	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/typeexpr"
)

// Account Fee's discriminator equals sha256("account:Fee")[0..8].
func TestAccountsDiscriminatorConstant(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	discm := discriminator.AnchorAccountDiscriminator("Fee")
	want := [8]byte{24, 55, 150, 250, 168, 27, 101, 178}
	if discm != want {
		t.Fatalf("AnchorAccountDiscriminator(Fee) = %v, want %v", discm, want)
	}

	accounts := []model.AccountDef{{
		NamedType: model.NamedType{
			Name: "Fee",
			Enum: &model.EnumBody{Variants: []model.EnumVariant{{Name: "Flat"}}},
		},
		Discriminator: discm[:],
	}}

	out := Accounts(accounts, cache)
	if !strings.Contains(out, "24, 55, 150, 250, 168, 27, 101, 178") {
		t.Errorf("expected the discriminator constant bytes in output:\n%s", out)
	}
	if !strings.Contains(out, "FEE_ACCOUNT_DISCM") {
		t.Errorf("expected a discriminator constant name, got:\n%s", out)
	}
	if !strings.Contains(out, "pub struct FeeAccount(pub Fee);") {
		t.Errorf("expected a wrapper type around the inner enum, got:\n%s", out)
	}
	if !strings.Contains(out, "discm does not match") {
		t.Errorf("expected a discriminator-mismatch error message in the deserializer, got:\n%s", out)
	}
}

func TestAccountsZeroLengthShankDiscriminator(t *testing.T) {
	cache := typeexpr.NewQueryCache()
	accounts := []model.AccountDef{{
		NamedType: model.NamedType{
			Name:   "Vault",
			Struct: &model.StructBody{Fields: []model.FieldDef{{Name: "balance", Type: typeexpr.NewPrimitive(typeexpr.PrimU64)}}},
		},
		Discriminator: nil,
	}}
	out := Accounts(accounts, cache)
	if !strings.Contains(out, "[u8; 0]") {
		t.Errorf("expected a zero-length discriminator array for an omitted Shank discriminator, got:\n%s", out)
	}
}
