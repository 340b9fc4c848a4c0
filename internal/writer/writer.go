// Package writer writes the emitted Rust source text and Cargo.toml to
// disk, running every Rust file through rustgen.Format as the one
// deterministic cleanup pass before anything touches disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/rustgen"
)

// CrateLayout is the set of files a generated interface crate may contain.
// Fields left empty are not written; a module file exists iff its section
// of the IDL was populated.
type CrateLayout struct {
	OutputDir    string
	CargoToml    []byte
	Lib          string
	Accounts     string
	Instructions string
	Typedefs     string
	Errors       string
	Constants    string
}

// Write lays out the crate under OutputDir as src/*.rs plus Cargo.toml,
// formatting every Rust source file with rustgen.Format before it touches
// disk and creating src/ if it does not already exist.
func Write(layout CrateLayout) error {
	srcDir := filepath.Join(layout.OutputDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return diag.IoFailure(fmt.Sprintf("create %s", srcDir), err)
	}

	if len(layout.CargoToml) > 0 {
		if err := writeFile(filepath.Join(layout.OutputDir, "Cargo.toml"), string(layout.CargoToml)); err != nil {
			return err
		}
	}

	files := []struct {
		name string
		body string
	}{
		{"lib.rs", layout.Lib},
		{"accounts.rs", layout.Accounts},
		{"instructions.rs", layout.Instructions},
		{"typedefs.rs", layout.Typedefs},
		{"errors.rs", layout.Errors},
		{"constants.rs", layout.Constants},
	}
	for _, f := range files {
		if f.body == "" {
			continue
		}
		if err := writeFile(filepath.Join(srcDir, f.name), rustgen.Format(f.body)); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates-or-truncates path, writes contents, and closes the
// file. The write is not atomic: a concurrent reader at the same path can
// observe a truncated or partly written file.
func writeFile(path, contents string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return diag.IoFailure(fmt.Sprintf("open %s", path), err)
	}
	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		return diag.IoFailure(fmt.Sprintf("write %s", path), err)
	}
	if err := f.Close(); err != nil {
		return diag.IoFailure(fmt.Sprintf("close %s", path), err)
	}
	return nil
}
