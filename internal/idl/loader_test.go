package idl

import (
	"testing"
)

const anchorSample = `{
  "name": "example",
  "version": "0.1.0",
  "metadata": {"address": "11111111111111111111111111111111"},
  "instructions": [
    {
      "name": "blankIx",
      "accounts": [],
      "args": []
    }
  ],
  "accounts": [
    {
      "name": "Counter",
      "type": {"kind": "struct", "fields": [{"name": "count", "type": "u64"}]}
    }
  ],
  "types": [],
  "errors": []
}`

const shankSample = `{
  "name": "example",
  "version": "0.1.0",
  "instructions": [
    {
      "name": "blank_ix",
      "discriminant": 0,
      "accounts": [],
      "args": []
    }
  ],
  "accounts": [
    {
      "name": "Counter",
      "fields": [{"name": "count", "type": "u64"}]
    }
  ],
  "types": [],
  "errors": []
}`

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Dialect
	}{
		{"anchor", anchorSample, DialectAnchor},
		{"shank", shankSample, DialectShank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := Detect(doc)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadAnchor(t *testing.T) {
	loaded, err := Load([]byte(anchorSample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Dialect != DialectAnchor {
		t.Fatalf("Dialect = %q, want anchor", loaded.Dialect)
	}
	if loaded.Anchor == nil {
		t.Fatal("Anchor document is nil")
	}
	if len(loaded.Anchor.Instructions) != 1 || loaded.Anchor.Instructions[0].Name != "blankIx" {
		t.Errorf("unexpected instructions: %+v", loaded.Anchor.Instructions)
	}
	if len(loaded.Anchor.Accounts) != 1 || loaded.Anchor.Accounts[0].Type.Kind != "struct" {
		t.Errorf("unexpected accounts: %+v", loaded.Anchor.Accounts)
	}
}

func TestLoadShank(t *testing.T) {
	loaded, err := Load([]byte(shankSample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Dialect != DialectShank {
		t.Fatalf("Dialect = %q, want shank", loaded.Dialect)
	}
	if loaded.Shank == nil {
		t.Fatal("Shank document is nil")
	}
	if len(loaded.Shank.Instructions) != 1 || loaded.Shank.Instructions[0].Discriminant != 0 {
		t.Errorf("unexpected instructions: %+v", loaded.Shank.Instructions)
	}
	if len(loaded.Shank.Accounts) != 1 || loaded.Shank.Accounts[0].Fields[0].Name != "count" {
		t.Errorf("unexpected accounts: %+v", loaded.Shank.Accounts)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestLoadNeitherDialect(t *testing.T) {
	_, err := Load([]byte(`{"name": "empty"}`))
	if err == nil {
		t.Fatal("expected an error when neither fingerprint matches")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/idl.json")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
