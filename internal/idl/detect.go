package idl

import (
	"encoding/json"

	"github.com/lugondev/solores-go/internal/diag"
)

// Detect inspects doc's structural shape and reports which dialect produced
// it: Anchor first (accounts wrapped in a "type"/"kind" object,
// instructions with no declared discriminant), then Shank (accounts
// are flat field lists, instructions declare an explicit numeric
// discriminant). The first fingerprint that matches wins; neither matching
// is a MalformedIdl error.
func Detect(doc *Document) (Dialect, error) {
	if looksAnchor(doc) {
		return DialectAnchor, nil
	}
	if looksShank(doc) {
		return DialectShank, nil
	}
	return "", diag.MalformedIDL("document matches neither the Anchor nor the Shank structural fingerprint")
}

// looksAnchor reports whether any instruction lacks a "discriminant" key, or
// any account/type entry is wrapped in a "type" object with a "kind" key —
// both of which are exclusively Anchor shapes.
func looksAnchor(doc *Document) bool {
	for _, raw := range doc.Accounts {
		var probe struct {
			Type *struct {
				Kind string `json:"kind"`
			} `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Type != nil && probe.Type.Kind != "" {
			return true
		}
	}
	for _, raw := range doc.Types {
		var probe struct {
			Type *struct {
				Kind string `json:"kind"`
			} `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Type != nil && probe.Type.Kind != "" {
			return true
		}
	}
	for _, raw := range doc.Instructions {
		var probe struct {
			Discriminant *int `json:"discriminant"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.Discriminant == nil {
			return true
		}
	}
	return false
}

// looksShank reports whether any instruction declares an explicit numeric
// discriminant, or any account entry is a flat field list with no "type"
// wrapper — the Shank-exclusive shape.
func looksShank(doc *Document) bool {
	for _, raw := range doc.Instructions {
		var probe struct {
			Discriminant *int `json:"discriminant"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Discriminant != nil {
			return true
		}
	}
	for _, raw := range doc.Accounts {
		var probe struct {
			Type   json.RawMessage `json:"type"`
			Fields []json.RawMessage `json:"fields"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Type == nil && probe.Fields != nil {
			return true
		}
	}
	return false
}
