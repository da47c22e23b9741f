// Package normalizer repairs corrupted or abbreviated category and
// sub-category strings, mapping them to their canonical spellings.
//
// Normalization is a total, pure function: it never fails, and input it does
// not recognize comes back unchanged. Repair runs as a short-circuit pipeline
// of independent stages:
//
//  1. exact dictionary lookup on the raw input,
//  2. exact dictionary lookup on a cleaned variant,
//  3. an ordered pattern rule list, first match wins,
//  4. single/double-glyph heuristics for known corruptions,
//  5. identity fallback.
//
// The dictionaries carry an identity entry for every canonical value, so
// normalizing an already-canonical string short-circuits at stage 1. That is
// what makes normalization idempotent by construction.
package normalizer

import (
	"regexp"
	"strings"
)

// cleanPattern strips every rune that is not a word character, a Hangul
// syllable, or '/'. Corrupted imports tend to carry stray punctuation and
// control characters around the surviving glyphs.
var cleanPattern = regexp.MustCompile(`[^\w가-힣/]`)

// rule is one ordered canonicalization rule. Rules are evaluated by a linear
// scan and the first pattern matching either the raw or the cleaned input
// wins, so narrower rules must precede broader ones.
type rule struct {
	pattern   *regexp.Regexp
	canonical string
}

// table bundles the stages of one normalization pipeline. Category and
// sub-category each have their own table.
type table struct {
	exact  map[string]string
	rules  []rule
	glyphs map[string]string // cleaned single/double-glyph corruptions
}

// Category normalizes a primary category string to its canonical form.
func Category(input string) string {
	return categoryTable.normalize(input)
}

// SubCategory normalizes a sub-category string to its canonical form.
func SubCategory(input string) string {
	return subCategoryTable.normalize(input)
}

func (t *table) normalize(input string) string {
	cleaned := clean(input)

	if canonical, ok := t.lookupExact(input, cleaned); ok {
		return canonical
	}
	if canonical, ok := t.matchRules(input, cleaned); ok {
		return canonical
	}
	if canonical, ok := t.glyphFallback(cleaned); ok {
		return canonical
	}
	return input
}

func clean(input string) string {
	return cleanPattern.ReplaceAllString(input, "")
}

func (t *table) lookupExact(raw, cleaned string) (string, bool) {
	if canonical, ok := t.exact[raw]; ok {
		return canonical, true
	}
	if canonical, ok := t.exact[cleaned]; ok {
		return canonical, true
	}
	return "", false
}

func (t *table) matchRules(raw, cleaned string) (string, bool) {
	for _, r := range t.rules {
		if r.pattern.MatchString(raw) || r.pattern.MatchString(cleaned) {
			return r.canonical, true
		}
	}
	return "", false
}

// glyphFallback recovers entries where corruption left only one or two
// recognizable glyphs. It only fires on an exact cleaned-length match, so a
// longer string containing one of these glyphs is never touched.
func (t *table) glyphFallback(cleaned string) (string, bool) {
	if n := len([]rune(cleaned)); n < 1 || n > 2 {
		return "", false
	}
	canonical, ok := t.glyphs[cleaned]
	return canonical, ok
}

// Canonicals returns every canonical value the table can produce, in no
// particular order. Exposed for the idempotence check in tests.
func Canonicals(sub bool) []string {
	t := categoryTable
	if sub {
		t = subCategoryTable
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range t.exact {
		add(v)
	}
	for _, r := range t.rules {
		add(r.canonical)
	}
	for _, v := range t.glyphs {
		add(v)
	}
	return out
}

// IsCanonicalCategory reports whether s is already a canonical category.
func IsCanonicalCategory(s string) bool {
	canonical, ok := categoryTable.exact[s]
	return ok && canonical == s && strings.TrimSpace(s) != ""
}
