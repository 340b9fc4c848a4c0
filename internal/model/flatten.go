package model

import (
	"fmt"

	"github.com/lugondev/solores-go/internal/diag"
	"github.com/lugondev/solores-go/internal/util"
)

// FlatSlot is one leaf account in positional order, exactly as it appears
// on the wire (the order the on-chain program expects AccountMeta entries
// in). FieldName is the name the struct-body field was collapsed to; it may
// be shared by more than one FlatSlot.
type FlatSlot struct {
	FieldName string
	Leaf      AccountLeaf
}

// Flattened is the result of walking an instruction's account entries: the
// full positional slot list, and the deduplicated field list a Rust struct
// can actually declare. A name that appears at two positions collapses to
// one struct field but keeps both positional slots in the wire-order array.
// Fields carries FlatSlots, not bare leaves, so the struct surface and the
// positional surface name accounts identically (a group leaf's field name
// is its prefixed FieldName, never the unprefixed leaf name).
type Flattened struct {
	Slots  []FlatSlot
	Fields []FlatSlot
}

// FlattenAccounts walks entries depth-first, joining a group's name onto
// each of its members' names (snake_case, underscore-joined) to build a
// unique-by-default field name, then collapses any remaining duplicates
// (two groups reusing an account of the same leaf name, or the IDL naming
// two top-level accounts identically) into a single struct field while
// preserving one FlatSlot per on-chain position. Every collapse is reported
// through logger as a warning, never an error: on-chain programs do list
// the same account at two positions (payer doubling as source, say).
func FlattenAccounts(entries []AccountEntry, logger *diag.Logger) Flattened {
	var slots []FlatSlot
	walkEntries(entries, "", &slots)

	seen := make(map[string]bool, len(slots))
	fields := make([]FlatSlot, 0, len(slots))
	for i := range slots {
		name := slots[i].FieldName
		if seen[name] {
			if logger != nil {
				logger.Warn(fmt.Sprintf("duplicate accounts named %q, assuming different indexes refer to the same account", name),
					map[string]any{"field": name})
			}
			continue
		}
		seen[name] = true
		fields = append(fields, slots[i])
	}

	return Flattened{Slots: slots, Fields: fields}
}

func walkEntries(entries []AccountEntry, prefix string, out *[]FlatSlot) {
	for _, e := range entries {
		switch {
		case e.Leaf != nil:
			name := e.Leaf.Name
			if prefix != "" {
				name = prefix + "_" + name
			}
			*out = append(*out, FlatSlot{FieldName: util.ToSnakeCase(name), Leaf: *e.Leaf})
		case e.Group != nil:
			groupPrefix := e.Group.Name
			if prefix != "" {
				groupPrefix = prefix + "_" + groupPrefix
			}
			walkEntries(e.Group.Entries, groupPrefix, out)
		}
	}
}
