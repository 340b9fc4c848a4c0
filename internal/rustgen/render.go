package rustgen

import "strings"

// Format is the deterministic pretty-printer step every File.Render runs
// through: trims trailing whitespace from each line and collapses runs of
// 2+ blank lines to exactly one, so output never depends on which emitter
// call produced an extra newline. No Go library formats Rust source, so
// this package owns its own normalization pass.
func Format(src string) string {
	lines := strings.Split(src, "\n")
	var out []string
	blank := false
	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t")
		if trimmed == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n"
}
