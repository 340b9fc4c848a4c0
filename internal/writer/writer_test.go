package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLayout(t *testing.T) {
	dir := t.TempDir()
	err := Write(CrateLayout{
		OutputDir: dir,
		CargoToml: []byte("[package]\nname = \"x\"\n"),
		Lib:       "solana_program::declare_id!(\"111\");\n",
		Accounts:  "pub struct Foo;\n\n\n",
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Cargo.toml")); err != nil {
		t.Errorf("Cargo.toml not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "lib.rs")); err != nil {
		t.Errorf("src/lib.rs not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "typedefs.rs")); err == nil {
		t.Errorf("src/typedefs.rs should not exist when Typedefs is empty")
	}

	body, err := os.ReadFile(filepath.Join(dir, "src", "accounts.rs"))
	if err != nil {
		t.Fatalf("read accounts.rs: %v", err)
	}
	if string(body) != "pub struct Foo;\n" {
		t.Errorf("expected formatted output with trailing blank lines collapsed, got %q", body)
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	if err := Write(CrateLayout{OutputDir: dir, Lib: "old content\n"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Write(CrateLayout{OutputDir: dir, Lib: "new content\n"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	body, err := os.ReadFile(filepath.Join(dir, "src", "lib.rs"))
	if err != nil {
		t.Fatalf("read lib.rs: %v", err)
	}
	if string(body) != "new content\n" {
		t.Errorf("expected truncated overwrite, got %q", body)
	}
}
