package manifest

import (
	"strings"
	"testing"
)

func TestLoadDefaultVersions(t *testing.T) {
	v, err := LoadDefaultVersions()
	if err != nil {
		t.Fatalf("LoadDefaultVersions: %v", err)
	}
	if v.Borsh == "" || v.SolanaProgram == "" {
		t.Fatalf("expected non-empty pinned versions, got %+v", v)
	}
}

func TestBuildMinimal(t *testing.T) {
	versions, err := LoadDefaultVersions()
	if err != nil {
		t.Fatalf("LoadDefaultVersions: %v", err)
	}
	c := Build(Options{CrateName: "drift_interface", CrateVersion: "0.1.0"}, versions)

	if c.Package.Name != "drift_interface" {
		t.Errorf("package name = %q", c.Package.Name)
	}
	if _, ok := c.Dependencies["borsh"]; !ok {
		t.Error("expected unconditional borsh dependency")
	}
	if _, ok := c.Dependencies["thiserror"]; ok {
		t.Error("thiserror should be absent without HasErrors")
	}
	if _, ok := c.Dependencies["bytemuck"]; ok {
		t.Error("bytemuck should be absent without ZeroCopyAccounts")
	}
}

func TestBuildWithErrorsAndZeroCopy(t *testing.T) {
	versions, _ := LoadDefaultVersions()
	c := Build(Options{
		CrateName:        "drift_interface",
		CrateVersion:     "0.1.0",
		HasErrors:        true,
		ZeroCopyAccounts: true,
	}, versions)

	for _, name := range []string{"thiserror", "num-derive", "num-traits", "bytemuck"} {
		if _, ok := c.Dependencies[name]; !ok {
			t.Errorf("expected dependency %q", name)
		}
	}
}

func TestDependencyForWorkspaceInherit(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    Dependency
	}{
		{"plain version", "^0.10", Dependency{Version: "^0.10"}},
		{"bare shorthand", "workspace", Dependency{Workspace: true}},
		{"inline table", "{ workspace = true }", Dependency{Workspace: true}},
		{"structured version", `{ version = "1.0" }`, Dependency{Version: "1.0"}},
		{"unparseable braces", "{not toml", Dependency{Version: "{not toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dependencyFor(tt.version)
			if got.Version != tt.want.Version || got.Workspace != tt.want.Workspace {
				t.Errorf("dependencyFor(%q) = %+v, want %+v", tt.version, got, tt.want)
			}
		})
	}
}

func TestMarshalProducesValidTOML(t *testing.T) {
	versions, _ := LoadDefaultVersions()
	c := Build(Options{CrateName: "x_interface", CrateVersion: "0.1.0"}, versions)
	out, err := Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "[package]") {
		t.Errorf("expected [package] table in output:\n%s", out)
	}
}
