package typeexpr

// QueryCache memoizes the transitive queries below per distinct TypeExpr
// node identity: the same *TypeExpr pointer is visited by several emitters
// (import-list computation), and recursion over a
// deeply nested option-of-vec-of-struct tree shouldn't be repeated per
// caller.
type QueryCache struct {
	referencesUserType  map[*TypeExpr]bool
	referencesPublicKey map[*TypeExpr]bool
}

// NewQueryCache returns a ready-to-use, empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{
		referencesUserType:  make(map[*TypeExpr]bool),
		referencesPublicKey: make(map[*TypeExpr]bool),
	}
}

// ReferencesUserType reports whether t, directly or through any nested
// array/vector/option/tuple element, names a user-declared typedef or
// account (KindDefinedByName). Emitters use this to decide whether a field
// forces an extra `use` of a sibling module.
func (c *QueryCache) ReferencesUserType(t *TypeExpr) bool {
	if v, ok := c.referencesUserType[t]; ok {
		return v
	}
	var result bool
	switch t.Kind {
	case KindDefinedByName:
		result = true
	case KindFixedArray, KindVector, KindOption:
		result = c.ReferencesUserType(t.Elem)
	case KindTuple:
		for _, e := range t.Elems {
			if c.ReferencesUserType(e) {
				result = true
				break
			}
		}
	default:
		result = false
	}
	c.referencesUserType[t] = result
	return result
}

// ReferencesPublicKey reports whether t, directly or through any nested
// element, contains a Pubkey — emitters use this to decide whether a module
// needs `use solana_program::pubkey::Pubkey`.
func (c *QueryCache) ReferencesPublicKey(t *TypeExpr) bool {
	if v, ok := c.referencesPublicKey[t]; ok {
		return v
	}
	var result bool
	switch t.Kind {
	case KindPublicKey:
		result = true
	case KindFixedArray, KindVector, KindOption:
		result = c.ReferencesPublicKey(t.Elem)
	case KindTuple:
		for _, e := range t.Elems {
			if c.ReferencesPublicKey(e) {
				result = true
				break
			}
		}
	default:
		result = false
	}
	c.referencesPublicKey[t] = result
	return result
}
