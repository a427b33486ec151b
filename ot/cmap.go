package ot

import (
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// This file implements the cmap table (character to glyph mapping) and the
// codepoint enumeration built on top of it.
//
// Code comments often cite passages from the OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/cmap.

// CMapTable represents an OpenType cmap table, i.e. the mapping of character
// codes to glyph indices.
//
// A font may contain several cmap subtables for different platforms and
// encodings. During parsing one subtable is selected (preferring the widest
// supported encoding) and exposed as GlyphIndexMap.
type CMapTable struct {
	tableBase
	NumGlyphs     int            // glyph count from table maxp, for glyph index validation
	GlyphIndexMap CMapGlyphIndex // lookup view of the selected cmap subtable
}

func newCMapTable(tag Tag, b binarySegm, offset, size uint32) *CMapTable {
	t := &CMapTable{}
	base := tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
	t.tableBase = base
	t.self = t
	return t
}

// CMapGlyphIndex is the glyph lookup view of the cmap subtable selected during
// parsing.
//
// From the OpenType specification: character codes that do not correspond to any
// glyph in the font should be mapped to glyph index 0. The glyph at this location
// must be a special glyph representing a missing character, commonly known
// as '.notdef'.
type CMapGlyphIndex interface {
	Lookup(r rune) GlyphIndex        // glyph for codepoint r; 0 if not covered
	ReverseLookup(g GlyphIndex) rune // first codepoint mapping to glyph g; 0 if none
	Codepoints() CodepointSet        // all codepoints mapped to a glyph other than 0
}

// --- Codepoint sets --------------------------------------------------------

// CodepointSet is a set of Unicode codepoints. It is the result type of
// enumerating a font's character-to-glyph mapping and the input to coverage
// calculations.
//
// The zero value of CodepointSet is a nil map: Has and Len work on it, Add
// does not. Use NewCodepointSet to create a set that can grow.
type CodepointSet map[rune]struct{}

// NewCodepointSet creates a codepoint set, optionally filled with initial members.
func NewCodepointSet(runes ...rune) CodepointSet {
	s := make(CodepointSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

// Add includes codepoint r in the set.
func (s CodepointSet) Add(r rune) {
	s[r] = struct{}{}
}

// Has returns true if codepoint r is a member of the set.
func (s CodepointSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of codepoints in the set.
func (s CodepointSet) Len() int {
	return len(s)
}

// Runes returns the members of the set as a slice, sorted in ascending order.
func (s CodepointSet) Runes() []rune {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Codepoints enumerates every codepoint which the table maps to a glyph other
// than glyph 0 ('.notdef'). Tables without a usable subtable yield an empty
// set.
func (t *CMapTable) Codepoints() CodepointSet {
	if t == nil || t.GlyphIndexMap == nil {
		return NewCodepointSet()
	}
	return t.GlyphIndexMap.Codepoints()
}

// GlyphIndex returns the glyph for codepoint r, or 0 if r is not covered.
func (t *CMapTable) GlyphIndex(r rune) GlyphIndex {
	if t == nil || t.GlyphIndexMap == nil {
		return 0
	}
	return t.GlyphIndexMap.Lookup(r)
}

// Codepoints enumerates every codepoint which the font maps to a glyph other
// than glyph 0 ('.notdef'). For fonts without a usable cmap subtable an empty
// set is returned.
func (otf *Font) Codepoints() CodepointSet {
	if otf == nil || otf.CMap == nil {
		return NewCodepointSet()
	}
	return otf.CMap.Codepoints()
}

// --- Platform and encoding IDs ---------------------------------------------

// Platform IDs and platform specific encoding IDs, as used in cmap encoding
// records.
const (
	pidUnicode   = 0
	pidMacintosh = 1
	pidWindows   = 3
)

const (
	psidUnicode2BMPOnly        = 3
	psidUnicode2FullRepertoire = 4
	psidMacintoshRoman         = 0
	psidWindowsSymbol          = 0
	psidWindowsUCS2            = 1
	psidWindowsUCS4            = 10
)

// platformEncodingWidth returns the number of bytes per character assumed by
// a platform/encoding pair, or 0 for unsupported combinations. The width is
// used to rank cmap subtables: wider encodings cover more of Unicode.
func platformEncodingWidth(pid, psid uint16) int {
	if pid == pidUnicode {
		switch psid {
		case psidUnicode2BMPOnly:
			return 2
		case psidUnicode2FullRepertoire:
			return 4
		}
	} else if pid == pidMacintosh {
		if psid == psidMacintoshRoman {
			return 1
		}
	} else if pid == pidWindows {
		switch psid {
		case psidWindowsSymbol:
			return 2
		case psidWindowsUCS2:
			return 2
		case psidWindowsUCS4:
			return 4
		}
	}
	return 0
}

// supportedCmapFormat returns whether a subtable format is supported for the
// given platform and encoding. Format 0 tables are only read for legacy
// Macintosh-Roman fonts; formats 4, 6 and 12 are always read.
func supportedCmapFormat(format, pid, psid uint16) bool {
	switch format {
	case 0:
		return pid == pidMacintosh && psid == psidMacintoshRoman
	case 4:
		return true
	case 6:
		return true
	case 12:
		return true
	}
	return false
}

// Some fonts claim absurd segment counts to provoke huge allocations.
// No real-world font comes close to this limit.
const maxCMapSegments = 20000

type encodingRecord struct {
	platformId uint16
	encodingId uint16
	offset     uint32 // subtable offset from the beginning of the cmap table
	format     uint16
	width      int // encoding width in bytes
}

// --- Subtable parsing ------------------------------------------------------

// makeGlyphIndex parses the selected cmap subtable and builds a lookup view
// for it. b is the complete cmap table, enc the winning encoding record.
func makeGlyphIndex(b binarySegm, enc encodingRecord, tag Tag, offset uint32, ec *errorCollector) (CMapGlyphIndex, error) {
	switch enc.format {
	case 0:
		return makeGlyphIndexFormat0(b, enc.offset, tag, offset, ec)
	case 4:
		return makeGlyphIndexFormat4(b, enc.offset, tag, offset, ec)
	case 6:
		return makeGlyphIndexFormat6(b, enc.offset, tag, offset, ec)
	case 12:
		return makeGlyphIndexFormat12(b, enc.offset, tag, offset, ec)
	}
	panic("unreachable")
}

// Format 0 is a legacy 1:1 mapping of the 256 Macintosh-Roman character codes
// to glyph indices.
func makeGlyphIndexFormat0(b binarySegm, suboffset uint32, tag Tag, offset uint32, ec *errorCollector) (CMapGlyphIndex, error) {
	const tableLength = 6 + 256
	buf, err := b.view(int(suboffset), tableLength)
	if err != nil {
		ec.addError(tag, "Format0", "subtable bounds overflow", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	if length := u16(buf[2:]); length != tableLength {
		ec.addError(tag, "Format0", fmt.Sprintf("invalid subtable length %d", length), SeverityCritical, offset)
		return nil, errFontFormat("invalid cmap size")
	}
	gi := format0GlyphIndex{}
	copy(gi.table[:], buf[6:])
	return gi, nil
}

// Format 4 is the standard subtable for fonts that support only Unicode Basic
// Multilingual Plane characters. Codepoints are grouped into segments, stored
// as four parallel arrays of segment end codes, start codes, glyph deltas and
// glyph range offsets.
func makeGlyphIndexFormat4(b binarySegm, suboffset uint32, tag Tag, offset uint32, ec *errorCollector) (CMapGlyphIndex, error) {
	const headerSize = 14
	headerdata, err := b.view(int(suboffset), headerSize)
	if err != nil {
		ec.addError(tag, "Format4", "subtable bounds overflow", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	suboffset += headerSize
	segCount := u16(headerdata[6:])
	if segCount&1 != 0 {
		ec.addError(tag, "Format4", fmt.Sprintf("odd segment count %d", segCount), SeverityCritical, offset)
		return nil, errFontFormat("cmap table format")
	}
	segCount /= 2
	if segCount > maxCMapSegments {
		ec.addError(tag, "Format4", fmt.Sprintf("%d segments exceed maximum", segCount), SeverityCritical, offset)
		return nil, errFontFormat(fmt.Sprintf("more than %d cmap segments not supported", maxCMapSegments))
	}
	// 4 parallel arrays of segCount u16 entries each, with a reserved pad
	// between the end code and start code arrays.
	eLength := 8*uint32(segCount) + 2
	segmentsData, err := b.view(int(suboffset), int(eLength))
	if err != nil {
		ec.addError(tag, "Format4", "segment arrays exceed subtable", SeverityCritical, offset)
		return nil, errFontFormat("cmap internal structure")
	}
	suboffset += eLength
	entries := make([]cmapEntry16, segCount)
	for i := range entries {
		entries[i] = cmapEntry16{
			end:    u16(segmentsData[0*len(entries)+0+2*i:]),
			start:  u16(segmentsData[2*len(entries)+2+2*i:]),
			delta:  u16(segmentsData[4*len(entries)+2+2*i:]),
			offset: u16(segmentsData[6*len(entries)+2+2*i:]),
		}
	}
	// The glyph ID array follows the segment arrays and extends to the end of
	// the cmap table. Range offsets are resolved relative to it.
	gi := format4GlyphIndex{entries: entries}
	if int(suboffset) < len(b) {
		gi.indexes = b[suboffset:]
	}
	return gi, nil
}

// Format 6 is a trimmed mapping of one contiguous block of codepoints.
func makeGlyphIndexFormat6(b binarySegm, suboffset uint32, tag Tag, offset uint32, ec *errorCollector) (CMapGlyphIndex, error) {
	const headerSize = 10
	buf, err := b.view(int(suboffset), headerSize)
	if err != nil {
		ec.addError(tag, "Format6", "subtable bounds overflow", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	suboffset += headerSize
	firstCode := u16(buf[6:])
	entryCount := u16(buf[8:])
	eLength := 2 * uint32(entryCount)
	if entryCount != 0 {
		buf, err = b.view(int(suboffset), int(eLength))
		if err != nil {
			ec.addError(tag, "Format6", "entry array exceeds subtable", SeverityCritical, offset)
			return nil, errFontFormat("cmap bounds overflow")
		}
	}
	entries := make([]uint16, entryCount)
	for i := range entries {
		entries[i] = u16(buf[2*i:])
	}
	return format6GlyphIndex{firstCode: firstCode, entries: entries}, nil
}

// Format 12 is the standard subtable for fonts covering characters beyond the
// Basic Multilingual Plane. Codepoints are grouped into sequential groups of
// 12 bytes each.
func makeGlyphIndexFormat12(b binarySegm, suboffset uint32, tag Tag, offset uint32, ec *errorCollector) (CMapGlyphIndex, error) {
	const headerSize = 16
	buf, err := b.view(int(suboffset), headerSize)
	if err != nil {
		ec.addError(tag, "Format12", "subtable bounds overflow", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	length := u32(buf[4:])
	if uint32(len(b)) < suboffset || length > uint32(len(b))-suboffset {
		ec.addError(tag, "Format12", "subtable length exceeds table", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	suboffset += headerSize
	numGroups := u32(buf[12:])
	if numGroups > maxCMapSegments {
		ec.addError(tag, "Format12", fmt.Sprintf("%d groups exceed maximum", numGroups), SeverityCritical, offset)
		return nil, errFontFormat(fmt.Sprintf("more than %d cmap segments not supported", maxCMapSegments))
	}
	eLength := 12 * numGroups
	if headerSize+eLength != length {
		ec.addError(tag, "Format12", "group count inconsistent with length", SeverityCritical, offset)
		return nil, errFontFormat("cmap table format")
	}
	buf, err = b.view(int(suboffset), int(eLength))
	if err != nil {
		ec.addError(tag, "Format12", "group array exceeds subtable", SeverityCritical, offset)
		return nil, errFontFormat("cmap bounds overflow")
	}
	entries := make([]cmapEntry32, numGroups)
	for i := range entries {
		entries[i] = cmapEntry32{
			start: u32(buf[0+12*i:]),
			end:   u32(buf[4+12*i:]),
			delta: u32(buf[8+12*i:]),
		}
	}
	return format12GlyphIndex{entries: entries}, nil
}

type cmapEntry16 struct {
	end, start, delta, offset uint16
}

type cmapEntry32 struct {
	start, end, delta uint32
}

// validGlyph guards against glyph indices beyond the font's glyph count.
// numGlyphs is 0 if the font carries no maxp table; no validation then.
func validGlyph(g GlyphIndex, numGlyphs int) GlyphIndex {
	if numGlyphs > 0 && int(g) >= numGlyphs {
		return 0
	}
	return g
}

// --- Format 0 lookup -------------------------------------------------------

type format0GlyphIndex struct {
	numGlyphs int
	table     [256]byte
}

func (gi format0GlyphIndex) Lookup(r rune) GlyphIndex {
	x, ok := charmap.Macintosh.EncodeRune(r)
	if !ok {
		// r is not representable in the Macintosh-Roman encoding
		return 0
	}
	return validGlyph(GlyphIndex(gi.table[x]), gi.numGlyphs)
}

func (gi format0GlyphIndex) ReverseLookup(g GlyphIndex) rune {
	if g == 0 {
		return 0
	}
	for x := 0; x < 256; x++ {
		if validGlyph(GlyphIndex(gi.table[x]), gi.numGlyphs) == g {
			return charmap.Macintosh.DecodeByte(byte(x))
		}
	}
	return 0
}

func (gi format0GlyphIndex) Codepoints() CodepointSet {
	cps := NewCodepointSet()
	for x := 0; x < 256; x++ {
		if validGlyph(GlyphIndex(gi.table[x]), gi.numGlyphs) == 0 {
			continue
		}
		cps.Add(charmap.Macintosh.DecodeByte(byte(x)))
	}
	return cps
}

// --- Format 4 lookup -------------------------------------------------------

type format4GlyphIndex struct {
	numGlyphs int
	entries   []cmapEntry16
	indexes   binarySegm // glyph ID array following the segment arrays
}

// glyphFor computes the glyph index for codepoint c within segment h.
// The range offset, if nonzero, is a byte offset into the glyph ID array,
// expressed relative to the offset entry's own position in the font data.
func (gi format4GlyphIndex) glyphFor(h int, c uint16) GlyphIndex {
	entry := &gi.entries[h]
	if entry.offset == 0 {
		return GlyphIndex(c + entry.delta)
	}
	offset := uint32(entry.offset) + 2*uint32(h-len(gi.entries)+int(c-entry.start))
	if int(offset)+2 > len(gi.indexes) {
		return 0
	}
	return GlyphIndex(u16(gi.indexes[offset:]))
}

func (gi format4GlyphIndex) Lookup(r rune) GlyphIndex {
	if uint32(r) > 0xffff {
		return 0
	}
	c := uint16(r)
	for i, j := 0, len(gi.entries); i < j; {
		h := i + (j-i)/2
		entry := &gi.entries[h]
		if c < entry.start {
			j = h
		} else if entry.end < c {
			i = h + 1
		} else {
			return validGlyph(gi.glyphFor(h, c), gi.numGlyphs)
		}
	}
	return 0
}

func (gi format4GlyphIndex) ReverseLookup(g GlyphIndex) rune {
	if g == 0 {
		return 0
	}
	for h := range gi.entries {
		for c := int(gi.entries[h].start); c <= int(gi.entries[h].end); c++ {
			if validGlyph(gi.glyphFor(h, uint16(c)), gi.numGlyphs) == g {
				return rune(c)
			}
		}
	}
	return 0
}

func (gi format4GlyphIndex) Codepoints() CodepointSet {
	cps := NewCodepointSet()
	for h := range gi.entries {
		// The final segment is a sentinel mapping 0xFFFF to .notdef; it drops
		// out naturally because its glyph index computes to 0.
		for c := int(gi.entries[h].start); c <= int(gi.entries[h].end); c++ {
			if validGlyph(gi.glyphFor(h, uint16(c)), gi.numGlyphs) == 0 {
				continue
			}
			cps.Add(rune(c))
		}
	}
	return cps
}

// --- Format 6 lookup -------------------------------------------------------

type format6GlyphIndex struct {
	numGlyphs int
	firstCode uint16
	entries   []uint16
}

func (gi format6GlyphIndex) Lookup(r rune) GlyphIndex {
	if uint32(r) > 0xffff || uint16(r) < gi.firstCode {
		return 0
	}
	c := int(uint16(r) - gi.firstCode)
	if c >= len(gi.entries) {
		return 0
	}
	return validGlyph(GlyphIndex(gi.entries[c]), gi.numGlyphs)
}

func (gi format6GlyphIndex) ReverseLookup(g GlyphIndex) rune {
	if g == 0 {
		return 0
	}
	for i := range gi.entries {
		if validGlyph(GlyphIndex(gi.entries[i]), gi.numGlyphs) == g {
			return rune(int(gi.firstCode) + i)
		}
	}
	return 0
}

func (gi format6GlyphIndex) Codepoints() CodepointSet {
	cps := NewCodepointSet()
	for i := range gi.entries {
		if validGlyph(GlyphIndex(gi.entries[i]), gi.numGlyphs) == 0 {
			continue
		}
		cps.Add(rune(int(gi.firstCode) + i))
	}
	return cps
}

// --- Format 12 lookup ------------------------------------------------------

type format12GlyphIndex struct {
	numGlyphs int
	entries   []cmapEntry32
}

func (gi format12GlyphIndex) Lookup(r rune) GlyphIndex {
	c := uint32(r)
	for i, j := 0, len(gi.entries); i < j; {
		h := i + (j-i)/2
		entry := &gi.entries[h]
		if c < entry.start {
			j = h
		} else if entry.end < c {
			i = h + 1
		} else {
			return validGlyph(GlyphIndex(c-entry.start+entry.delta), gi.numGlyphs)
		}
	}
	return 0
}

func (gi format12GlyphIndex) ReverseLookup(g GlyphIndex) rune {
	if g == 0 {
		return 0
	}
	for _, entry := range gi.entries {
		end := entry.end
		if end > unicode.MaxRune {
			end = unicode.MaxRune
		}
		for c := entry.start; c <= end; c++ {
			if validGlyph(GlyphIndex(c-entry.start+entry.delta), gi.numGlyphs) == g {
				return rune(c)
			}
		}
	}
	return 0
}

func (gi format12GlyphIndex) Codepoints() CodepointSet {
	cps := NewCodepointSet()
	for _, entry := range gi.entries {
		// Clamp to the Unicode range; malformed groups may claim more.
		end := entry.end
		if end > unicode.MaxRune {
			end = unicode.MaxRune
		}
		for c := entry.start; c <= end; c++ {
			if validGlyph(GlyphIndex(c-entry.start+entry.delta), gi.numGlyphs) == 0 {
				continue
			}
			cps.Add(rune(c))
		}
	}
	return cps
}
