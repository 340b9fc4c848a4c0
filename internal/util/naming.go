// Package util provides identifier case-conversion helpers shared by every
// stage of the generator. Rust identifiers follow different conventions from
// the IDL's own (snake_case fields, PascalCase types, SCREAMING_SNAKE_CASE
// constants); every lowering pass goes through here so the conventions stay
// in one place.
package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case, kebab-case, or space-separated
// identifier to PascalCase. "user_account" -> "UserAccount".
func ToPascalCase(s string) string {
	words := SplitWords(s)
	var result strings.Builder
	for _, word := range words {
		if len(word) == 0 {
			continue
		}
		result.WriteString(strings.ToUpper(string(word[0])))
		result.WriteString(strings.ToLower(word[1:]))
	}
	return result.String()
}

// ToSnakeCase converts an identifier to snake_case, the convention Rust
// expects for fields, functions, and modules. "UserAccount" -> "user_account".
func ToSnakeCase(s string) string {
	words := SplitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "_")
}

// ToScreamingSnakeCase converts an identifier to SCREAMING_SNAKE_CASE, the
// convention Rust expects for constants. "doThing" -> "DO_THING".
func ToScreamingSnakeCase(s string) string {
	words := SplitWords(s)
	for i := range words {
		words[i] = strings.ToUpper(words[i])
	}
	return strings.Join(words, "_")
}

// SplitWords splits an identifier on underscores, hyphens, spaces, and
// camelCase/PascalCase boundaries.
func SplitWords(s string) []string {
	var words []string
	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			if !unicode.IsUpper(prev) && prev != '_' && prev != '-' && prev != ' ' {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				// Boundary inside a run of capitals, e.g. "HTTPServer" -> "HTTP", "Server".
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// IsRustReservedWord reports whether s collides with a Rust keyword, in
// which case emitted identifiers must be suffixed (e.g. "type" -> "type_").
func IsRustReservedWord(s string) bool {
	_, ok := rustKeywords[strings.ToLower(s)]
	return ok
}

// EscapeRustIdent appends an underscore to s if it collides with a Rust
// keyword, leaving every other identifier untouched.
func EscapeRustIdent(s string) string {
	if IsRustReservedWord(s) {
		return s + "_"
	}
	return s
}

var rustKeywords = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {}, "else": {},
	"enum": {}, "extern": {}, "false": {}, "fn": {}, "for": {}, "if": {},
	"impl": {}, "in": {}, "let": {}, "loop": {}, "match": {}, "mod": {},
	"move": {}, "mut": {}, "pub": {}, "ref": {}, "return": {}, "self": {},
	"Self": {}, "static": {}, "struct": {}, "super": {}, "trait": {}, "true": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {}, "async": {},
	"await": {}, "dyn": {}, "abstract": {}, "become": {}, "box": {}, "do": {},
	"final": {}, "macro": {}, "override": {}, "priv": {}, "typeof": {},
	"unsized": {}, "virtual": {}, "yield": {}, "try": {},
}
