// Package manifest builds the generated crate's Cargo.toml: a typed
// CargoToml value marshaled with go-toml/v2, with default crate-version
// pins loaded from an embedded YAML table so they can be overridden
// per-run without a rebuild.
package manifest

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// defaultVersionsYAML pins the fallback versions for every crate the
// generated code can depend on (borsh, bytemuck, serde, solana-program,
// thiserror, num-derive, num-traits). Kept as embedded data rather than
// Go literals so the table reads as configuration.
//
//go:embed default_versions.yaml
var defaultVersionsYAML []byte

// DependencyVersions is the parsed form of default_versions.yaml.
type DependencyVersions struct {
	Borsh         string `yaml:"borsh"`
	Bytemuck      string `yaml:"bytemuck"`
	Serde         string `yaml:"serde"`
	SolanaProgram string `yaml:"solana_program"`
	Thiserror     string `yaml:"thiserror"`
	NumDerive     string `yaml:"num_derive"`
	NumTraits     string `yaml:"num_traits"`
}

// LoadDefaultVersions parses the embedded default dependency-version table.
func LoadDefaultVersions() (DependencyVersions, error) {
	var v DependencyVersions
	if err := yaml.Unmarshal(defaultVersionsYAML, &v); err != nil {
		return v, fmt.Errorf("manifest: parse default versions: %w", err)
	}
	return v, nil
}

// Package is Cargo.toml's [package] table.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Dependency is one Cargo.toml dependency table entry. A plain pinned
// version carries a `version` key; a workspace-inherited dependency
// carries `workspace = true` instead. Optional and Features are omitted
// when zero-valued.
type Dependency struct {
	Version   string   `toml:"version,omitempty"`
	Workspace bool     `toml:"workspace,omitempty"`
	Optional  bool     `toml:"optional,omitempty"`
	Features  []string `toml:"features,omitempty"`
}

// dependencyFor interprets a caller-supplied version value: a structured
// inline table like `{ workspace = true }` (or the bare shorthand
// "workspace") becomes a workspace-inherit directive; anything else is
// taken as a plain version requirement.
func dependencyFor(version string) Dependency {
	trimmed := strings.TrimSpace(version)
	if trimmed == "workspace" {
		return Dependency{Workspace: true}
	}
	if strings.HasPrefix(trimmed, "{") {
		var doc struct {
			Dep Dependency `toml:"dep"`
		}
		if err := toml.Unmarshal([]byte("dep = "+trimmed), &doc); err == nil && (doc.Dep.Workspace || doc.Dep.Version != "") {
			return doc.Dep
		}
	}
	return Dependency{Version: version}
}

// CargoToml is the full generated manifest.
type CargoToml struct {
	Package      Package               `toml:"package"`
	Dependencies map[string]Dependency `toml:"dependencies"`
	Features     map[string][]string   `toml:"features,omitempty"`
}

// Options describes which optional modules and dialect features the
// generated crate needs, decided by the caller from the normalized
// model.Program.
type Options struct {
	CrateName       string
	CrateVersion    string
	HasErrors       bool
	HasInstructions bool
	// ZeroCopyAccounts is true for Shank IDLs whose accounts are read via
	// bytemuck rather than Borsh.
	ZeroCopyAccounts bool
	// SerdeFeature adds the optional serde dependency and the `serde` feature
	// that the `#[cfg_attr(feature = "serde", ...)]` attributes written by
	// emit/instructions.go and emit/typedefs.go refer to.
	SerdeFeature bool
}

// Build assembles the Cargo.toml for a generated crate. borsh and
// solana-program are unconditional: every emitted module derives
// BorshSerialize/BorshDeserialize or names solana_program::* types.
func Build(opts Options, versions DependencyVersions) CargoToml {
	deps := map[string]Dependency{
		"borsh":          dependencyFor(versions.Borsh),
		"solana-program": dependencyFor(versions.SolanaProgram),
	}
	if opts.HasErrors {
		deps["thiserror"] = dependencyFor(versions.Thiserror)
		deps["num-derive"] = dependencyFor(versions.NumDerive)
		deps["num-traits"] = dependencyFor(versions.NumTraits)
	}
	if opts.ZeroCopyAccounts {
		bytemuck := dependencyFor(versions.Bytemuck)
		bytemuck.Features = []string{"derive"}
		deps["bytemuck"] = bytemuck
	}
	var features map[string][]string
	if opts.SerdeFeature {
		serde := dependencyFor(versions.Serde)
		serde.Optional = true
		serde.Features = []string{"derive"}
		deps["serde"] = serde

		features = map[string][]string{
			"serde": {"dep:serde"},
		}
	}

	return CargoToml{
		Package: Package{
			Name:    opts.CrateName,
			Version: opts.CrateVersion,
			Edition: "2021",
		},
		Dependencies: deps,
		Features:     features,
	}
}

// Marshal renders a CargoToml to its textual form.
func Marshal(c CargoToml) ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("manifest: marshal Cargo.toml: %w", err)
	}
	return out, nil
}
