package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const anchorIDL = `{
  "name": "example",
  "version": "0.1.0",
  "metadata": {"address": "11111111111111111111111111111111"},
  "instructions": [
    {"name": "blankIx", "accounts": [], "args": []}
  ],
  "accounts": [
    {"name": "Counter", "type": {"kind": "struct", "fields": [{"name": "count", "type": "u64"}]}}
  ],
  "types": [],
  "errors": [{"name": "Unauthorized", "msg": "not authorized"}]
}`

func writeIDL(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "idl.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write idl: %v", err)
	}
	return path
}

func TestGenerateEndToEnd(t *testing.T) {
	idlDir := t.TempDir()
	outDir := t.TempDir()
	idlPath := writeIDL(t, idlDir, anchorIDL)

	res, err := Generate(Options{
		IDLPath:   idlPath,
		OutputDir: outDir,
		CrateName: "example-interface",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if res.ProgramID != "11111111111111111111111111111111" {
		t.Errorf("expected ProgramID from the IDL's own address, got %q", res.ProgramID)
	}

	for _, name := range []string{"Cargo.toml", "src/lib.rs", "src/accounts.rs", "src/instructions.rs", "src/errors.rs"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "src", "typedefs.rs")); err == nil {
		t.Error("typedefs.rs should not be emitted when the IDL has no types")
	}

	instructions, err := os.ReadFile(filepath.Join(outDir, "src", "instructions.rs"))
	if err != nil {
		t.Fatalf("read instructions.rs: %v", err)
	}
	// sha256("global:blank_ix")[0..8].
	if !strings.Contains(string(instructions), "29, 47, 197, 250, 126, 165, 198, 197") {
		t.Errorf("expected blank_ix discriminator bytes in instructions.rs, got:\n%s", instructions)
	}
}

// A caller-supplied program-id override wins over the
// IDL's own declared address.
func TestGenerateProgramIDOverrideWins(t *testing.T) {
	idlDir := t.TempDir()
	outDir := t.TempDir()
	idlPath := writeIDL(t, idlDir, anchorIDL)

	override := "FhmV5grfgJkUZRqfLNF1j6BUmVe2heQPFVfc4fE1pzun"
	res, err := Generate(Options{
		IDLPath:           idlPath,
		OutputDir:         outDir,
		ProgramIDOverride: override,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.ProgramID != override {
		t.Errorf("expected override to win, got %q", res.ProgramID)
	}

	lib, err := os.ReadFile(filepath.Join(outDir, "src", "lib.rs"))
	if err != nil {
		t.Fatalf("read lib.rs: %v", err)
	}
	if !strings.Contains(string(lib), override) {
		t.Errorf("expected lib.rs to declare the override id, got:\n%s", lib)
	}
}

func TestGenerateFallsBackToPlaceholderWithWarning(t *testing.T) {
	idlDir := t.TempDir()
	outDir := t.TempDir()
	idlPath := writeIDL(t, idlDir, `{
		"name": "noaddr",
		"version": "0.1.0",
		"instructions": [{"name": "blank_ix", "discriminant": 0, "accounts": [], "args": []}],
		"accounts": [],
		"types": [],
		"errors": []
	}`)

	res, err := Generate(Options{IDLPath: idlPath, OutputDir: outDir})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.ProgramID != "11111111111111111111111111111111" {
		t.Errorf("expected placeholder program id, got %q", res.ProgramID)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning about the missing program address")
	}
}

func TestGenerateRejectsInvalidProgramIDOverride(t *testing.T) {
	idlDir := t.TempDir()
	outDir := t.TempDir()
	idlPath := writeIDL(t, idlDir, anchorIDL)

	_, err := Generate(Options{IDLPath: idlPath, OutputDir: outDir, ProgramIDOverride: "not-a-valid-base58-pubkey!!"})
	if err == nil {
		t.Fatal("expected an error for an invalid program-id override")
	}
}

func TestGenerateRejectsUnresolvedDefinedName(t *testing.T) {
	idlDir := t.TempDir()
	outDir := t.TempDir()
	idlPath := writeIDL(t, idlDir, `{
		"name": "bad",
		"version": "0.1.0",
		"instructions": [],
		"accounts": [
			{"name": "Foo", "type": {"kind": "struct", "fields": [{"name": "bar", "type": {"defined": "Missing"}}]}}
		],
		"types": [],
		"errors": []
	}`)

	_, err := Generate(Options{IDLPath: idlPath, OutputDir: outDir})
	if err == nil {
		t.Fatal("expected UnresolvedName error for a DefinedByName with no matching typedef/account")
	}
}
