package typeexpr

import (
	"testing"

	"github.com/lugondev/solores-go/internal/idl"
)

func TestFromJSONPrimitive(t *testing.T) {
	tests := []struct {
		wire string
		want string
	}{
		{"u8", "u8"},
		{"u64", "u64"},
		{"string", "String"},
		{"bytes", "Vec<u8>"},
		{"pubkey", "Pubkey"},
		{"publicKey", "Pubkey"},
	}
	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			te, err := FromJSON(idl.TypeJSON{Primitive: tt.wire})
			if err != nil {
				t.Fatalf("FromJSON(%q): %v", tt.wire, err)
			}
			if got := te.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromJSONComposite(t *testing.T) {
	// option<vec<u64>>
	wire := idl.TypeJSON{Option: &idl.TypeJSON{Vec: &idl.TypeJSON{Primitive: "u64"}}}
	te, err := FromJSON(wire)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got, want := te.String(), "Option<Vec<u64>>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromJSONFixedArray(t *testing.T) {
	wire := idl.TypeJSON{Array: &idl.ArrayJSON{Elem: idl.TypeJSON{Primitive: "u8"}, Length: 32}}
	te, err := FromJSON(wire)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got, want := te.String(), "[u8; 32]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromJSONDefinedAndUnknownPrimitive(t *testing.T) {
	te, err := FromJSON(idl.TypeJSON{Defined: &idl.DefinedJSON{Name: "Counter"}})
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got, want := te.String(), "Counter"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := FromJSON(idl.TypeJSON{Primitive: "nonsense"}); err == nil {
		t.Error("expected an error for an unknown primitive")
	}
}

func TestDefinedNameRendersPascalCase(t *testing.T) {
	// References must match the PascalCase declaration site even when the
	// IDL declares the type in another casing.
	tests := []struct {
		declared string
		want     string
	}{
		{"feeEnum", "FeeEnum"},
		{"fee_enum", "FeeEnum"},
		{"FeeEnum", "FeeEnum"},
	}
	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			if got := DefinedByName(tt.declared).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferencesUserType(t *testing.T) {
	cache := NewQueryCache()

	plain := NewPrimitive(PrimU64)
	if cache.ReferencesUserType(plain) {
		t.Error("plain u64 should not reference a user type")
	}

	nested := Option(Vector(DefinedByName("Counter")))
	if !cache.ReferencesUserType(nested) {
		t.Error("option<vec<Counter>> should reference a user type")
	}

	tuple := Tuple([]*TypeExpr{NewPrimitive(PrimU8), DefinedByName("Foo")})
	if !cache.ReferencesUserType(tuple) {
		t.Error("tuple containing a defined type should reference a user type")
	}
}

func TestReferencesPublicKey(t *testing.T) {
	cache := NewQueryCache()

	if !cache.ReferencesPublicKey(FixedArray(PublicKey(), 1)) {
		t.Error("[pubkey; 1] should reference a public key")
	}
	if cache.ReferencesPublicKey(NewPrimitive(PrimString)) {
		t.Error("string should not reference a public key")
	}
}

func TestReferencesUserTypeMemoizes(t *testing.T) {
	cache := NewQueryCache()
	node := DefinedByName("Counter")

	first := cache.ReferencesUserType(node)
	second := cache.ReferencesUserType(node)
	if first != second {
		t.Error("memoized result changed between calls")
	}
	if _, ok := cache.referencesUserType[node]; !ok {
		t.Error("expected node to be memoized")
	}
}
