package discriminator

import (
	"reflect"
	"testing"
)

// BLANK_IX_IX_DISCM = sha256("global:blank_ix")[0..8].
func TestAnchorInstructionDiscriminatorBlankIx(t *testing.T) {
	got := AnchorInstructionDiscriminator("blank_ix")
	want := [8]byte{29, 47, 197, 250, 126, 165, 198, 197}
	if got != want {
		t.Errorf("AnchorInstructionDiscriminator(%q) = %v, want %v", "blank_ix", got, want)
	}
}

func TestAnchorInstructionDiscriminatorNormalizesCase(t *testing.T) {
	camel := AnchorInstructionDiscriminator("blankIx")
	snake := AnchorInstructionDiscriminator("blank_ix")
	if camel != snake {
		t.Errorf("camelCase and snake_case instruction names must hash identically: %v vs %v", camel, snake)
	}
}

func TestAnchorAccountDiscriminatorIsDeterministic(t *testing.T) {
	a := AnchorAccountDiscriminator("Counter")
	b := AnchorAccountDiscriminator("Counter")
	if a != b {
		t.Error("discriminator must be a pure function of the name")
	}
	other := AnchorAccountDiscriminator("OtherAccount")
	if a == other {
		t.Error("distinct account names must not collide")
	}
}

func TestShankInstructionDiscriminatorVerbatim(t *testing.T) {
	if got := ShankInstructionDiscriminator(0); got != 0 {
		t.Errorf("ShankInstructionDiscriminator(0) = %d, want 0", got)
	}
	if got := ShankInstructionDiscriminator(255); got != 255 {
		t.Errorf("ShankInstructionDiscriminator(255) = %d, want 255", got)
	}
}

func TestShankAccountDiscriminatorCopiesAndHandlesNil(t *testing.T) {
	declared := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	got := ShankAccountDiscriminator(declared)
	if !reflect.DeepEqual(got, declared) {
		t.Errorf("ShankAccountDiscriminator = %v, want %v", got, declared)
	}
	declared[0] = 99
	if got[0] == 99 {
		t.Error("ShankAccountDiscriminator must return a copy, not alias the input")
	}
	if ShankAccountDiscriminator(nil) != nil {
		t.Error("ShankAccountDiscriminator(nil) should return nil")
	}
}
