// Package rustgen is a typed Rust token builder: chained statement-building
// methods (Id/Lit/Op/Qual/Block) that render to deterministically formatted
// source. Building items as token trees rather than string templates keeps
// quoting bugs out of the emitters and gives one place to normalize
// formatting before anything reaches disk.
package rustgen

import "strings"

// Code is anything that can render itself to Rust source text.
type Code interface {
	Render() string
}

// Raw is a pre-formatted fragment, inserted verbatim.
type Raw string

// Render implements Code.
func (r Raw) Render() string { return string(r) }

// Statement is a chain of tokens rendered on one logical line (it may still
// contain an embedded multi-line Block). Every chaining method mutates and
// returns the same *Statement.
type Statement struct {
	parts []Code
}

// Render implements Code: adjacent parts are joined with a single space,
// except before punctuation that never wants a leading space and after
// punctuation that never wants a trailing one.
func (s *Statement) Render() string {
	var b strings.Builder
	for i, p := range s.parts {
		text := p.Render()
		if i > 0 && needsSpace(lastRune(b.String()), firstRune(text)) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}

func (s *Statement) append(c Code) *Statement {
	s.parts = append(s.parts, c)
	return s
}

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r := []rune(s)
	return r[len(r)-1]
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	return []rune(s)[0]
}

// needsSpace decides whether to insert a space between two already-rendered
// fragments, based only on their boundary characters. Tuned for the small,
// fixed vocabulary this package actually emits (identifiers, braces,
// commas, colons, operators) rather than general Rust tokenization.
func needsSpace(prev, next rune) bool {
	if prev == 0 || next == 0 {
		return false
	}
	noSpaceBefore := "(),.;:!?]}>"
	noSpaceAfter := "([<&#"
	if strings.ContainsRune(noSpaceBefore, next) {
		return false
	}
	if strings.ContainsRune(noSpaceAfter, prev) {
		return false
	}
	return true
}

// List renders a comma-separated sequence of Code, used for field lists,
// call arguments, and generic parameters.
type List struct {
	items []Code
	sep   string
}

// Render implements Code.
func (l List) Render() string {
	parts := make([]string, len(l.items))
	for i, it := range l.items {
		parts[i] = it.Render()
	}
	sep := l.sep
	if sep == "" {
		sep = ", "
	}
	return strings.Join(parts, sep)
}
