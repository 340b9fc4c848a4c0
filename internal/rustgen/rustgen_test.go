package rustgen

import (
	"strings"
	"testing"
)

func TestByteArrayLit(t *testing.T) {
	got := ByteArrayLit([]byte{29, 47, 197})
	want := "[29, 47, 197]"
	if got != want {
		t.Errorf("ByteArrayLit = %q, want %q", got, want)
	}
}

func TestConstRender(t *testing.T) {
	c := Const("BLANK_IX_IX_DISCM", "[u8; 8]", ByteArrayLit([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	got := c.Render()
	if !strings.Contains(got, "pub const BLANK_IX_IX_DISCM") {
		t.Errorf("Const render missing name: %q", got)
	}
	if !strings.Contains(got, "[1, 2, 3, 4, 5, 6, 7, 8]") {
		t.Errorf("Const render missing value: %q", got)
	}
	if !strings.HasSuffix(got, ";") {
		t.Errorf("Const render should end with a semicolon: %q", got)
	}
}

func TestStructRender(t *testing.T) {
	body := Block(Field("count", "u64"), Field("owner", "Pubkey"))
	derive := Derive("Clone", "Debug").Render()
	decl := Pub(Struct("Counter", body)).Render()

	if derive != "#[derive(Clone, Debug)]" {
		t.Errorf("Derive render = %q", derive)
	}
	if !strings.Contains(decl, "struct Counter") {
		t.Errorf("missing struct keyword/name: %q", decl)
	}
	if !strings.Contains(decl, "pub count: u64,") {
		t.Errorf("missing field: %q", decl)
	}
}

func TestFileUseDedupAndSort(t *testing.T) {
	f := NewFile()
	f.Use("solana_program::pubkey::Pubkey")
	f.Use("borsh::{BorshSerialize, BorshDeserialize}")
	f.Use("solana_program::pubkey::Pubkey")
	f.Add(Const("FOO", "u8", "1"))

	got := f.Render()
	firstUse := strings.Index(got, "use borsh")
	secondUse := strings.Index(got, "use solana_program::pubkey")
	if firstUse == -1 || secondUse == -1 || firstUse > secondUse {
		t.Errorf("expected sorted, deduplicated use block, got:\n%s", got)
	}
	if strings.Count(got, "solana_program::pubkey::Pubkey") != 1 {
		t.Errorf("expected the duplicate use to be deduplicated, got:\n%s", got)
	}
}

func TestFormatCollapsesBlankLines(t *testing.T) {
	got := Format("a\n\n\n\nb\n")
	want := "a\n\nb\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatTrimsTrailingWhitespace(t *testing.T) {
	got := Format("a   \nb\t\n")
	want := "a\nb\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
