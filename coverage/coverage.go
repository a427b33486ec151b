// Package coverage measures how well a font's character repertoire covers
// Unicode blocks and the exemplar characters of natural languages.
//
// The package is pure computation over a codepoint set: no I/O, no state.
// Reference data lives in two read-only tables, Blocks and Languages.
package coverage

import (
	"sort"
	"strings"

	"github.com/npillmayer/fontpreview/ot"
)

// Block is a named contiguous range of codepoints, both bounds inclusive.
// Blocks follow Unicode convention but are not required to partition the
// codespace, nor to be disjoint.
type Block struct {
	Name string
	Lo   rune
	Hi   rune
}

// BlockCoverage returns the percentage of codepoints in the inclusive range
// lo..hi which are contained in supported. An empty or inverted range yields
// 0.0.
func BlockCoverage(supported ot.CodepointSet, lo, hi rune) float64 {
	total := int(hi) - int(lo) + 1
	if total <= 0 {
		return 0.0
	}
	covered := 0
	for r := lo; r <= hi; r++ {
		if supported.Has(r) {
			covered++
		}
	}
	return float64(covered) / float64(total) * 100.0
}

// Coverage returns the percentage of the block's codepoints contained in
// supported.
func (b Block) Coverage(supported ot.CodepointSet) float64 {
	return BlockCoverage(supported, b.Lo, b.Hi)
}

// BlockByName finds a block in the reference table, matching its name without
// regard to case.
func BlockByName(name string) (Block, bool) {
	for _, b := range Blocks {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Block{}, false
}

// BlockNames returns the names of all reference blocks, sorted
// alphabetically.
func BlockNames() []string {
	names := make([]string, len(Blocks))
	for i, b := range Blocks {
		names[i] = b.Name
	}
	sort.Strings(names)
	return names
}

// LanguageProfile holds the exemplar characters a font must map for a
// natural language to be considered supported.
type LanguageProfile struct {
	Name   string
	Sample string
}

// Coverage returns the percentage of the profile's distinct characters
// contained in supported, together with the missing characters in ascending
// order. A profile without characters counts as fully covered.
func (lp LanguageProfile) Coverage(supported ot.CodepointSet) (float64, []rune) {
	distinct := ot.NewCodepointSet([]rune(lp.Sample)...)
	if distinct.Len() == 0 {
		return 100.0, nil
	}
	var missing []rune
	for _, r := range distinct.Runes() {
		if !supported.Has(r) {
			missing = append(missing, r)
		}
	}
	covered := distinct.Len() - len(missing)
	return float64(covered) / float64(distinct.Len()) * 100.0, missing
}

// LanguageByName finds a language profile in the reference table, matching
// its name without regard to case.
func LanguageByName(name string) (LanguageProfile, bool) {
	for _, lp := range Languages {
		if strings.EqualFold(lp.Name, name) {
			return lp, true
		}
	}
	return LanguageProfile{}, false
}

// LanguageCoverage returns the coverage of the named language's profile,
// looked up in the reference table without regard to case. An unknown
// language yields (0.0, nil).
func LanguageCoverage(supported ot.CodepointSet, language string) (float64, []rune) {
	if lp, ok := LanguageByName(language); ok {
		return lp.Coverage(supported)
	}
	return 0.0, nil
}

// LanguageNames returns the names of all reference language profiles, sorted
// alphabetically.
func LanguageNames() []string {
	names := make([]string, len(Languages))
	for i, lp := range Languages {
		names[i] = lp.Name
	}
	sort.Strings(names)
	return names
}
