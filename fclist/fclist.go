// Package fclist enumerates the fonts installed on the system by querying
// fontconfig's fc-list utility.
//
// Enumeration is deliberately forgiving: systems without fontconfig, broken
// installations and malformed records all degrade to an empty or shortened
// font list, never to an error.
package fclist

import (
	"context"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the tracer with key 'fontpreview.fclist'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview.fclist")
}

// FontInfo describes one installed font variant, as reported by fontconfig.
type FontInfo struct {
	Family   string // display group name, e.g. "Noto Sans"
	Style    string // e.g. "Bold Italic"
	Path     string // filesystem location of the font file
	Weight   string // style axis labels as free text, may be empty
	Slant    string
	Width    string
	Favorite bool // set by the caller, never by the enumerator
}

// DisplayName returns the name under which a font is presented to users:
// the family alone for regular cuts, family plus style otherwise.
func (fi FontInfo) DisplayName() string {
	if fi.Style == "" || strings.EqualFold(fi.Style, "Regular") {
		return fi.Family
	}
	return fi.Family + " " + fi.Style
}

// Match reports whether query is a substring of the font's family or style
// name, ignoring case.
func (fi FontInfo) Match(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(fi.Family), q) ||
		strings.Contains(strings.ToLower(fi.Style), q)
}

// InstalledFonts returns descriptors for the fonts installed on the system,
// enumerated through src. Passing a nil source selects fc-list with default
// settings.
//
// An unavailable or unresponsive enumeration command is not an error: the
// result is simply empty.
func InstalledFonts(ctx context.Context, src Source) []FontInfo {
	if src == nil {
		src = ExecSource{}
	}
	out, err := src.List(ctx)
	if err != nil {
		tracer().Debugf("font enumeration: %v", err)
		if len(out) == 0 {
			return []FontInfo{}
		}
		// a failing fc-list may still have produced usable output
	}
	return ParseList(out)
}

// ParseList parses fc-list output into font descriptors. Each line carries
// pipe-separated fields
//
//	family|style|file|weight|slant|width
//
// Lines with fewer than three fields are skipped. Family and style may hold
// comma-separated localized variants; only the first one is used. Exact
// duplicates (same family, style and path) are collapsed, first occurrence
// wins. The result is sorted by family name, ignoring case; ties keep
// enumeration order.
func ParseList(out []byte) []FontInfo {
	type identity struct {
		family, style, path string
	}
	seen := make(map[identity]bool)
	fonts := []FontInfo{}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			tracer().Debugf("skipping malformed fc-list record %q", line)
			continue
		}
		fi := FontInfo{
			Family: firstVariant(fields[0]),
			Style:  firstVariant(fields[1]),
			Path:   strings.TrimSpace(fields[2]),
		}
		if len(fields) > 3 {
			fi.Weight = strings.TrimSpace(fields[3])
		}
		if len(fields) > 4 {
			fi.Slant = strings.TrimSpace(fields[4])
		}
		if len(fields) > 5 {
			fi.Width = strings.TrimSpace(fields[5])
		}
		id := identity{fi.Family, fi.Style, fi.Path}
		if seen[id] {
			continue
		}
		seen[id] = true
		fonts = append(fonts, fi)
	}
	sort.SliceStable(fonts, func(i, j int) bool {
		return strings.ToLower(fonts[i].Family) < strings.ToLower(fonts[j].Family)
	})
	return fonts
}

// firstVariant reduces a comma-separated list of localized name variants to
// its first entry.
func firstVariant(s string) string {
	if at := strings.IndexByte(s, ','); at >= 0 {
		s = s[:at]
	}
	return strings.TrimSpace(s)
}
