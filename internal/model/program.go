package model

import (
	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/idl"
)

// NormalizeLoaded dispatches to NormalizeAnchor or NormalizeShank based on
// the dialect idl.Load already detected.
func NormalizeLoaded(loaded *idl.Loaded, logger *diag.Logger) (*Program, error) {
	switch loaded.Dialect {
	case idl.DialectAnchor:
		return NormalizeAnchor(loaded.Anchor, logger)
	case idl.DialectShank:
		return NormalizeShank(loaded.Shank, logger)
	default:
		return nil, diag.MalformedIDL("unknown dialect")
	}
}

// FlattenInstructionAccounts is a convenience wrapper tying FlattenAccounts
// to one instruction's entries.
func FlattenInstructionAccounts(ix InstructionDef, logger *diag.Logger) Flattened {
	return FlattenAccounts(ix.Accounts, logger)
}
