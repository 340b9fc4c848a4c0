package idl

import (
	"os"

	"github.com/lugondev/solores-go/internal/diag"
)

// Loaded is the result of loading and dialect-detecting an IDL document:
// exactly one of Anchor or Shank is populated, matching Dialect.
type Loaded struct {
	Dialect Dialect
	Anchor  *AnchorDocument
	Shank   *ShankDocument
}

// LoadFile reads path and runs it through Load.
func LoadFile(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.IoFailure("reading IDL file", err).WithDetails(map[string]any{"path": path})
	}
	return Load(data)
}

// Load parses data into a permissive Document, detects its dialect, and
// decodes it into the matching dialect-specific tree.
func Load(data []byte) (*Loaded, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dialect, err := Detect(doc)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectAnchor:
		anchor, err := AsAnchor(doc)
		if err != nil {
			return nil, err
		}
		return &Loaded{Dialect: DialectAnchor, Anchor: anchor}, nil
	case DialectShank:
		shank, err := AsShank(doc)
		if err != nil {
			return nil, err
		}
		return &Loaded{Dialect: DialectShank, Shank: shank}, nil
	default:
		return nil, diag.MalformedIDL("unknown dialect")
	}
}
