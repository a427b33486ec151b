package otquery

import (
	"encoding/binary"
	"sort"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/fontpreview/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	otf, err := ot.Parse(testFont(), ot.IsTestfont)
	env.Require().NoError(err, "cannot parse synthetic test font")
	env.otf = otf
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	fti := FontType(env.otf)
	env.Equal("TrueType", fti, "expected font type of test font to be TrueType")
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal("Specimen Sans", fam, "expected font family name 'Specimen Sans'")
	env.Equal("Regular", info["subfamily"], "expected font subfamily 'Regular'")
	env.Equal("Specimen Sans Regular", info["fullname"], "expected full font name")
}

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'head'")

	headTable := env.otf.Table(ot.T("head")).Self().AsHead()
	env.Require().NotNil(headTable, "expected parsed HeadTable")

	env.Equal(headTable.Flags, h.Flags, "expected matching Flags")
	env.Equal(headTable.UnitsPerEm, h.UnitsPerEm, "expected matching UnitsPerEm")
	env.Equal(int16(headTable.IndexToLocFormat), h.IndexToLocFormat, "expected matching IndexToLocFormat")
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'maxp'")

	maxpTable := env.otf.Table(ot.T("maxp")).Self().AsMaxP()
	env.Require().NotNil(maxpTable, "expected parsed MaxPTable")

	env.Equal(uint16(maxpTable.NumGlyphs), m.NumGlyphs, "expected matching numGlyphs")
	env.NotZero(m.VersionFixed, "expected maxp version to be set")
	env.True(m.HasExtendedProfile, "expected version 1.0 maxp profile fields")
}

func (env *InfoTestEnviron) TestFontMetricsInfo() {
	metrics := FontMetrics(env.otf)
	env.Equal(sfnt.Units(2048), metrics.UnitsPerEm, "expected units-per-em 2048")
	env.Equal(sfnt.Units(1900), metrics.Ascent, "expected ascent from hhea")
	env.Equal(sfnt.Units(-500), metrics.Descent, "expected descent from hhea")
	env.Equal(sfnt.Units(2300), metrics.MaxAdvance, "expected max advance from hhea")
}

func (env *InfoTestEnviron) TestGlyphIndexLookup() {
	gid := GlyphIndex(env.otf, 'A')
	env.Equal(ot.GlyphIndex(1), gid, "expected glyph index of 'A' to be 1")
	gid = GlyphIndex(env.otf, 'ä')
	env.Equal(ot.GlyphIndex(0), gid, "expected uncovered code-point to yield glyph 0")
}

func (env *InfoTestEnviron) TestReverseLookup() {
	r := CodePointForGlyph(env.otf, 1)
	env.Equal('A', r, "expected code-point to be %#U, is %#U", 'A', r)
	r = CodePointForGlyph(env.otf, 0)
	env.Equal(rune(0), r, "expected glyph 0 to yield no code-point")
}

func (env *InfoTestEnviron) TestGlyphMetricsInfo() {
	metrics := GlyphMetrics(env.otf, 1)
	env.Equal(sfnt.Units(1200), metrics.Advance, "expected advance of glyph 1")
	env.Equal(sfnt.Units(80), metrics.LSB, "expected left side bearing of glyph 1")
	// glyphs beyond the last full metric record share its advance width
	metrics = GlyphMetrics(env.otf, 4)
	env.Equal(sfnt.Units(1500), metrics.Advance, "expected advance of monospaced tail")
	env.Equal(sfnt.Units(40), metrics.LSB, "expected left side bearing from tail array")
}

func (env *InfoTestEnviron) TestFontMetricsTypoFallback() {
	// hhea with zero ascent/descent: typographic values from OS/2 take over
	os2 := make([]byte, 78)
	putI16(os2, 68, 1600) // sTypoAscender
	putI16(os2, 70, -400) // sTypoDescender
	font := assembleFont(map[string][]byte{
		"head": headTable(1000),
		"hhea": hheaTable(0, 0, 0, 0, 0),
		"OS/2": os2,
	})
	otf, err := ot.Parse(font, ot.IsTestfont)
	env.Require().NoError(err)
	metrics := FontMetrics(otf)
	env.Equal(sfnt.Units(1600), metrics.Ascent, "expected ascent from OS/2")
	env.Equal(sfnt.Units(-400), metrics.Descent, "expected descent from OS/2")
	env.Equal(sfnt.Units(1000), metrics.UnitsPerEm, "expected units-per-em from head")
}

// --- Synthetic test font ---------------------------------------------------

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

func putI16(b []byte, at int, v int16) {
	putU16(b, at, uint16(v))
}

// assembleFont wraps tables into an sfnt binary: sorted table records,
// 4-byte aligned offsets, checksums zero.
func assembleFont(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	font := make([]byte, 12+16*len(tags))
	putU32(font, 0, 0x00010000)
	putU16(font, 4, uint16(len(tags)))
	offset := len(font)
	for i, tag := range tags {
		rec := 12 + 16*i
		copy(font[rec:rec+4], tag)
		putU32(font, rec+8, uint32(offset))
		putU32(font, rec+12, uint32(len(tables[tag])))
		offset += (len(tables[tag]) + 3) &^ 3
	}
	for _, tag := range tags {
		padded := make([]byte, (len(tables[tag])+3)&^3)
		copy(padded, tables[tag])
		font = append(font, padded...)
	}
	return font
}

func headTable(unitsPerEm uint16) []byte {
	b := make([]byte, 54)
	putU32(b, 0, 0x00010000)
	putU32(b, 12, 0x5f0f3cf5)
	putU16(b, 18, unitsPerEm)
	return b
}

func maxpTable(numGlyphs uint16) []byte {
	b := make([]byte, 32)
	putU32(b, 0, 0x00010000)
	putU16(b, 4, numGlyphs)
	return b
}

func hheaTable(ascent, descent, lineGap int16, maxAdvance, numHMetrics uint16) []byte {
	b := make([]byte, 36)
	putU32(b, 0, 0x00010000)
	putI16(b, 4, ascent)
	putI16(b, 6, descent)
	putI16(b, 8, lineGap)
	putU16(b, 10, maxAdvance)
	putU16(b, 34, numHMetrics)
	return b
}

// hmtxTable lays out full (advance, lsb) records followed by the left side
// bearings of a monospaced tail.
func hmtxTable(metrics [][2]int16, tailLSBs ...int16) []byte {
	b := make([]byte, 4*len(metrics)+2*len(tailLSBs))
	for i, m := range metrics {
		putU16(b, 4*i, uint16(m[0]))
		putI16(b, 4*i+2, m[1])
	}
	for i, lsb := range tailLSBs {
		putI16(b, 4*len(metrics)+2*i, lsb)
	}
	return b
}

// cmapFormat4 builds a cmap table with a single Windows BMP subtable mapping
// the segment start..end to consecutive glyphs from firstGlyph on.
func cmapFormat4(start, end, firstGlyph uint16) []byte {
	sub := make([]byte, 32)
	putU16(sub, 0, 4)
	putU16(sub, 2, 32) // length
	putU16(sub, 6, 4)  // segCountX2
	putU16(sub, 14, end)
	putU16(sub, 16, 0xffff)
	putU16(sub, 20, start)
	putU16(sub, 22, 0xffff)
	putU16(sub, 24, firstGlyph-start)
	putU16(sub, 26, 1)
	b := make([]byte, 12)
	putU16(b, 2, 1)
	putU16(b, 4, 3) // Windows
	putU16(b, 6, 1) // Unicode BMP
	putU32(b, 8, 12)
	return append(b, sub...)
}

func utf16be(s string) []byte {
	codes := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(codes))
	for i, c := range codes {
		putU16(b, 2*i, c)
	}
	return b
}

func nameTable(names map[sfnt.NameID]string) []byte {
	ids := make([]int, 0, len(names))
	for id := range names {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	b := make([]byte, 6)
	putU16(b, 2, uint16(len(ids)))
	putU16(b, 4, uint16(6+12*len(ids)))
	var storage []byte
	for _, id := range ids {
		str := utf16be(names[sfnt.NameID(id)])
		rec := make([]byte, 12)
		putU16(rec, 0, 3)      // Windows
		putU16(rec, 2, 1)      // Unicode BMP
		putU16(rec, 4, 0x0409) // en-US
		putU16(rec, 6, uint16(id))
		putU16(rec, 8, uint16(len(str)))
		putU16(rec, 10, uint16(len(storage)))
		b = append(b, rec...)
		storage = append(storage, str...)
	}
	return append(b, storage...)
}

func testFont() []byte {
	return assembleFont(map[string][]byte{
		"cmap": cmapFormat4('A', 'Z', 1),
		"head": headTable(2048),
		"hhea": hheaTable(1900, -500, 0, 2300, 3),
		"hmtx": hmtxTable([][2]int16{{600, 50}, {1200, 80}, {1500, 90}}, 30, 40),
		"maxp": maxpTable(512),
		"name": nameTable(map[sfnt.NameID]string{
			sfnt.NameIDFamily:    "Specimen Sans",
			sfnt.NameIDSubfamily: "Regular",
			sfnt.NameIDFull:      "Specimen Sans Regular",
			sfnt.NameIDVersion:   "Version 1.000",
		}),
	})
}
