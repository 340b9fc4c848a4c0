// Package generator wires the pipeline stages into the single entry point
// a CLI or library caller drives: load an IDL, normalize it, compute
// per-module transitive-property caches, emit every populated module,
// build the manifest, and hand the result to the writer.
package generator

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/emit"
	"github.com/lugondev/solores-go/internal/idl"
	"github.com/lugondev/solores-go/internal/manifest"
	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/typeexpr"
	"github.com/lugondev/solores-go/internal/writer"
)

// Options configures one generation run. Only IDLPath and OutputDir are
// required; everything else follows caller-override > IDL > default
// precedence.
type Options struct {
	IDLPath           string
	OutputDir         string
	CrateName         string
	CrateVersion      string
	ProgramIDOverride string                       // base58, validated; empty means "no override"
	Versions          *manifest.DependencyVersions // nil means use compiled-in defaults
	Logger            *diag.Logger                 // nil means a default slog-backed logger
}

// Result reports what a run produced, for a caller (CLI or test) that wants
// to print a summary without re-deriving it from the Program.
type Result struct {
	Program      *model.Program
	ProgramID    string
	Warnings     []diag.Warning
	EmittedFiles []string // file names actually written under src/, plus Cargo.toml
}

// Generate runs the full A-G pipeline and writes the resulting crate to
// opts.OutputDir. It is the single function a CLI subcommand or a caller
// embedding this module as a library needs to call.
func Generate(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = diag.NewLogger(nil)
	}

	loaded, err := idl.LoadFile(opts.IDLPath)
	if err != nil {
		return nil, err
	}

	program, err := model.NormalizeLoaded(loaded, logger)
	if err != nil {
		return nil, err
	}

	if err := checkUnresolvedNames(program); err != nil {
		return nil, err
	}

	programID, err := resolveProgramID(opts.ProgramIDOverride, program.Address, logger)
	if err != nil {
		return nil, err
	}

	versions := opts.Versions
	if versions == nil {
		v, err := manifest.LoadDefaultVersions()
		if err != nil {
			return nil, err
		}
		versions = &v
	}

	cache := typeexpr.NewQueryCache()

	var typedefsSrc, accountsSrc, instructionsSrc, errorsSrc, constantsSrc string
	if len(program.Types) > 0 {
		typedefsSrc = emit.Typedefs(program.Types, cache)
	}
	if len(program.Accounts) > 0 {
		accountsSrc = emit.Accounts(program.Accounts, cache)
	}
	if len(program.Instructions) > 0 {
		instructionsSrc = emit.Instructions(program.Instructions, cache, logger)
	}
	if len(program.Errors) > 0 {
		errorsSrc = emit.Errors(program.Errors, program.Name)
	}
	if len(program.Constants) > 0 {
		constantsSrc = emit.Constants(program.Constants, cache)
	}

	libSrc := emit.Lib(programID,
		len(program.Accounts) > 0,
		len(program.Instructions) > 0,
		len(program.Types) > 0,
		len(program.Errors) > 0,
		len(program.Constants) > 0,
	)

	crateName := opts.CrateName
	if crateName == "" {
		crateName = program.Name + "-interface"
	}
	crateVersion := opts.CrateVersion
	if crateVersion == "" {
		crateVersion = "0.1.0"
	}

	manifestOpts := manifest.Options{
		CrateName:        crateName,
		CrateVersion:     crateVersion,
		HasErrors:        len(program.Errors) > 0,
		HasInstructions:  len(program.Instructions) > 0,
		ZeroCopyAccounts: program.Dialect == idl.DialectShank && hasZeroCopyAccounts(program),
		SerdeFeature:     true,
	}
	cargoToml := manifest.Build(manifestOpts, *versions)
	cargoTomlBytes, err := manifest.Marshal(cargoToml)
	if err != nil {
		return nil, err
	}

	layout := writer.CrateLayout{
		OutputDir:    opts.OutputDir,
		CargoToml:    cargoTomlBytes,
		Lib:          libSrc,
		Accounts:     accountsSrc,
		Instructions: instructionsSrc,
		Typedefs:     typedefsSrc,
		Errors:       errorsSrc,
		Constants:    constantsSrc,
	}
	if err := writer.Write(layout); err != nil {
		return nil, err
	}

	return &Result{
		Program:      program,
		ProgramID:    programID,
		Warnings:     logger.Warnings(),
		EmittedFiles: emittedFileNames(layout),
	}, nil
}

// resolveProgramID applies the three-step precedence: an explicit caller
// override wins if present and valid, then the IDL's own declared address,
// then a documented placeholder with a warning.
func resolveProgramID(override, idlAddress string, logger *diag.Logger) (string, error) {
	if override != "" {
		pk, err := solana.PublicKeyFromBase58(override)
		if err != nil {
			return "", diag.InvalidProgramAddress(override, err)
		}
		return pk.String(), nil
	}
	if idlAddress != "" {
		pk, err := solana.PublicKeyFromBase58(idlAddress)
		if err != nil {
			return "", diag.InvalidProgramAddress(idlAddress, err)
		}
		return pk.String(), nil
	}
	logger.Warn("no program address supplied by the caller or the IDL; emitting the placeholder System Program id",
		map[string]any{"placeholder": emit.DefaultProgramAddress})
	return emit.DefaultProgramAddress, nil
}

// checkUnresolvedNames verifies that every named type reference reachable
// from a typedef, account, instruction arg, or constant names a declared
// typedef or account, surfacing the problem here instead of as a compile
// error in the generated crate.
func checkUnresolvedNames(p *model.Program) error {
	declared := make(map[string]bool, len(p.Types)+len(p.Accounts))
	for _, t := range p.Types {
		declared[t.Name] = true
	}
	for _, a := range p.Accounts {
		declared[a.Name] = true
	}

	var walk func(te *typeexpr.TypeExpr) error
	walk = func(te *typeexpr.TypeExpr) error {
		if te == nil {
			return nil
		}
		switch te.Kind {
		case typeexpr.KindDefinedByName:
			if !declared[te.Name] {
				return diag.UnresolvedName(te.Name)
			}
		case typeexpr.KindFixedArray, typeexpr.KindVector, typeexpr.KindOption:
			return walk(te.Elem)
		case typeexpr.KindTuple:
			for _, e := range te.Elems {
				if err := walk(e); err != nil {
					return err
				}
			}
		}
		return nil
	}

	walkFields := func(fields []model.FieldDef) error {
		for _, f := range fields {
			if err := walk(f.Type); err != nil {
				return err
			}
		}
		return nil
	}
	walkNamedType := func(nt model.NamedType) error {
		if nt.Struct != nil {
			if err := walkFields(nt.Struct.Fields); err != nil {
				return err
			}
		}
		if nt.Enum != nil {
			for _, v := range nt.Enum.Variants {
				if err := walkFields(v.Fields); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, t := range p.Types {
		if err := walkNamedType(t); err != nil {
			return err
		}
	}
	for _, a := range p.Accounts {
		if err := walkNamedType(a.NamedType); err != nil {
			return err
		}
	}
	for _, ix := range p.Instructions {
		if err := walkFields(ix.Args); err != nil {
			return err
		}
	}
	for _, c := range p.Constants {
		if err := walk(c.Type); err != nil {
			return err
		}
	}
	return nil
}

// hasZeroCopyAccounts reports whether any account's discriminator is empty.
// Shank IDLs that omit the account discriminator are, in practice, the
// bytemuck-repr(C) zero-copy accounts real Shank programs use instead of
// Borsh; manifest.Options.ZeroCopyAccounts uses this to decide whether to
// add the bytemuck dependency.
func hasZeroCopyAccounts(p *model.Program) bool {
	for _, a := range p.Accounts {
		if len(a.Discriminator) == 0 {
			return true
		}
	}
	return false
}

func emittedFileNames(layout writer.CrateLayout) []string {
	var names []string
	if len(layout.CargoToml) > 0 {
		names = append(names, "Cargo.toml")
	}
	files := []struct {
		name string
		body string
	}{
		{"src/lib.rs", layout.Lib},
		{"src/accounts.rs", layout.Accounts},
		{"src/instructions.rs", layout.Instructions},
		{"src/typedefs.rs", layout.Typedefs},
		{"src/errors.rs", layout.Errors},
		{"src/constants.rs", layout.Constants},
	}
	for _, f := range files {
		if f.body != "" {
			names = append(names, f.name)
		}
	}
	return names
}
