// Package normalize turns loosely-keyed feed records into canonical
// sales, leads and traffic investments. All functions are pure and
// best-effort: malformed fields resolve to defaults instead of errors.
package normalize

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RawRecord is one untyped item as delivered by a feed. Keys carry
// arbitrary casing, spacing and accents.
type RawRecord map[string]any

// envelopeKey wraps the payload when a record comes through a queue
// envelope (n8n emits items as {"json": {...}}).
const envelopeKey = "json"

// NormalizeKey canonicalizes a field name for matching: lower-cased,
// trimmed, diacritics decomposed and dropped, everything outside
// [a-z0-9] removed. "Preço " and "preco" normalize identically.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(stripper, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve locates the value for any of the candidate field names in a
// record, insensitive to casing, accents, punctuation and surrounding
// whitespace. Candidates are tried in order, so earlier candidates take
// priority when a record carries several matching fields; decoded JSON
// objects have no key order, and resolution must not depend on map
// iteration. Record keys colliding on the same normalized form are
// broken by lexicographic key order. The second return is false when
// the record is empty or nothing matched; callers apply their own
// defaults.
func Resolve(record RawRecord, candidates []string) (any, bool) {
	if len(record) == 0 {
		return nil, false
	}
	if wrapped, ok := record[envelopeKey].(map[string]any); ok {
		record = wrapped
	}
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	byNorm := make(map[string]any, len(record))
	for _, k := range keys {
		nk := NormalizeKey(k)
		if _, ok := byNorm[nk]; !ok {
			byNorm[nk] = record[k]
		}
	}
	for _, c := range candidates {
		if v, ok := byNorm[NormalizeKey(c)]; ok {
			return v, true
		}
	}
	return nil, false
}
