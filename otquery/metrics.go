package otquery

import (
	"github.com/npillmayer/fontpreview/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Font metrics ----------------------------------------------------------

const hheaTableSize = 36

// FontMetrics retrieves selected metrics of a font.
//
// Ascender, descender, line gap and maximum advance width stem from table
// 'hhea'. Fonts leaving those fields zero get the typographic values from
// table 'OS/2' instead.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if otf == nil {
		return metrics
	}
	if table := otf.Table(ot.T("hhea")); table != nil {
		if b := table.Binary(); len(b) >= hheaTableSize {
			metrics.Ascent = sfnt.Units(i16(b[4:6]))
			metrics.Descent = sfnt.Units(i16(b[6:8]))
			metrics.LineGap = sfnt.Units(i16(b[8:10]))
			metrics.MaxAdvance = sfnt.Units(u16(b[10:12]))
		}
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if table := otf.Table(ot.T("OS/2")); table != nil {
			if b := table.Binary(); len(b) >= 72 {
				a := sfnt.Units(i16(b[68:70])) // sTypoAscender
				if a > metrics.Ascent {
					tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
					metrics.Ascent = a
				}
				d := sfnt.Units(i16(b[70:72])) // sTypoDescender
				if d < metrics.Descent {
					tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
					metrics.Descent = d
				}
			}
		}
	}
	if table := otf.Table(ot.T("head")); table != nil {
		if head := table.Self().AsHead(); head != nil {
			metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
		}
	}
	return metrics
}

// --- Glyph routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a given code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) ot.GlyphIndex {
	if otf == nil {
		return 0
	}
	return otf.CMap.GlyphIndex(codepoint)
}

// CodePointForGlyph returns the code-point for a given glyph index.
//
// This is an inefficient operation: All code-points contained in the font's CMap
// are checked sequentially if they produce the given glyph.
// If the glyph index does not correspond to a code-point, 0 is returned.
func CodePointForGlyph(otf *ot.Font, gid ot.GlyphIndex) rune {
	if otf == nil || otf.CMap == nil || gid == 0 {
		return 0
	}
	return otf.CMap.GlyphIndexMap.ReverseLookup(gid)
}

// GlyphMetrics retrieves metrics for a given glyph.
//
// Advance width and left side bearing stem from table 'hmtx'. Glyphs past
// the last full metric record share the advance width of that record, as the
// spec allows for monospaced trailing ranges.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if otf == nil {
		return metrics
	}
	numh := numberOfHMetrics(otf)
	hmtx := otf.Table(ot.T("hmtx"))
	if numh == 0 || hmtx == nil {
		return metrics
	}
	b := hmtx.Binary()
	i := int(gid)
	if i < numh {
		if 4*i+4 > len(b) {
			return metrics
		}
		metrics.Advance = sfnt.Units(u16(b[4*i:]))
		metrics.LSB = sfnt.Units(i16(b[4*i+2:]))
		return metrics
	}
	if 4*numh > len(b) {
		return metrics
	}
	metrics.Advance = sfnt.Units(u16(b[4*(numh-1):]))
	if at := 4*numh + 2*(i-numh); at+2 <= len(b) {
		metrics.LSB = sfnt.Units(i16(b[at:]))
	}
	return metrics
}

func numberOfHMetrics(otf *ot.Font) int {
	hhea := otf.Table(ot.T("hhea"))
	if hhea == nil {
		return 0
	}
	b := hhea.Binary()
	if len(b) < hheaTableSize {
		return 0
	}
	return int(u16(b[34:36]))
}
