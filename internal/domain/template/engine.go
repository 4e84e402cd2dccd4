// Package template substitutes {{TOKEN}} placeholders in contract, proposal
// and e-mail bodies and resolves documents into token tables.
package template

import (
	"sort"
	"strings"
)

// Table maps a literal token (e.g. "{{NOME_CLIENTE}}") to its replacement.
type Table map[string]string

// Token wraps a catalog name in braces.
func Token(name string) string {
	return "{{" + name + "}}"
}

// Set stores a value under the braced form of name.
func (t Table) Set(name, value string) {
	t[Token(name)] = value
}

// Merge copies other into t, overriding existing keys.
func (t Table) Merge(other Table) Table {
	for k, v := range other {
		t[k] = v
	}
	return t
}

// Render replaces every occurrence of every token in body. Matching is
// literal and case-sensitive; unknown tokens stay verbatim and replacement
// values are never scanned again.
func Render(body string, table Table) string {
	if body == "" || len(table) == 0 {
		return body
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// Longest first so a token that prefixes another never shadows it.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, table[k])
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

// Unresolved lists the {{...}} placeholders left in a rendered body, in order
// of first appearance.
func Unresolved(rendered string) []string {
	var out []string
	seen := map[string]bool{}
	rest := rendered
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			return out
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			return out
		}
		tok := rest[start : start+2+end+2]
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
		rest = rest[start+2+end+2:]
	}
}
