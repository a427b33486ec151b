package fontpreview

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/favorites"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/sfnt"
)

func TestFromBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	//
	otf, err := FromBinary(testFont())
	if err != nil {
		t.Fatalf("expected font to parse, have %v", err)
	}
	if otf.CMap == nil {
		t.Error("expected parsed font to carry a character map, but hasn't")
	}
}

func TestFamilyName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	//
	otf, err := FromBinary(testFont())
	if err != nil {
		t.Fatal(err)
	}
	family, subfamily := FamilyName(otf)
	if family != "Specimen Sans" {
		t.Errorf("expected family 'Specimen Sans', is %q", family)
	}
	if subfamily != "Bold" {
		t.Errorf("expected subfamily 'Bold', is %q", subfamily)
	}
}

func TestFontCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "specimen.ttf")
	if err := os.WriteFile(path, testFont(), 0644); err != nil {
		t.Fatal(err)
	}
	set := FontCoverage(path)
	if set.Len() != 26 {
		t.Fatalf("expected 26 covered codepoints, have %d", set.Len())
	}
	if !set.Has('M') || set.Has('a') {
		t.Error("expected coverage of uppercase letters only")
	}
}

func TestFontCoverageAbsorbsFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	//
	if set := FontCoverage(filepath.Join(t.TempDir(), "no-such.ttf")); set.Len() != 0 {
		t.Errorf("expected empty coverage for missing file, have %d codepoints", set.Len())
	}
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("this is not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if set := FontCoverage(path); set.Len() != 0 {
		t.Errorf("expected empty coverage for corrupt file, have %d codepoints", set.Len())
	}
}

func TestOverlayFavorites(t *testing.T) {
	fonts := []fclist.FontInfo{{Family: "Inter"}, {Family: "Lato"}}
	fonts = overlayFavorites(fonts, favorites.NewSet("Lato"))
	if fonts[0].Favorite {
		t.Error("expected 'Inter' not to be marked favorite, but is")
	}
	if !fonts[1].Favorite {
		t.Error("expected 'Lato' to be marked favorite, but isn't")
	}
}

func TestLoadFontMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpreview")
	defer teardown()
	//
	if _, err := LoadFont(filepath.Join(t.TempDir(), "no-such.ttf")); err == nil {
		t.Error("expected loading a missing file to fail, but hasn't")
	}
}

// --- Synthetic font ---------------------------------------------------

func putU16(b []byte, at int, v uint16) { binary.BigEndian.PutUint16(b[at:], v) }
func putU32(b []byte, at int, v uint32) { binary.BigEndian.PutUint32(b[at:], v) }

// testFont assembles a minimal font carrying every required table. Only
// cmap, head and maxp have meaningful content; the remaining tables are
// opaque stubs.
func testFont() []byte {
	return assembleFont(map[string][]byte{
		"cmap": cmapFormat4('A', 'Z', 1),
		"head": headTable(1000),
		"hhea": make([]byte, 36),
		"hmtx": make([]byte, 8),
		"maxp": maxpTable(64),
		"name": nameTable(map[sfnt.NameID]string{
			sfnt.NameIDFamily:    "Specimen Sans",
			sfnt.NameIDSubfamily: "Bold",
		}),
		"OS/2": make([]byte, 78),
		"post": make([]byte, 32),
	})
}

func assembleFont(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	font := make([]byte, 12+16*len(tags))
	putU32(font, 0, 0x00010000)
	putU16(font, 4, uint16(len(tags)))
	offset := uint32(len(font))
	for i, tag := range tags {
		rec := 12 + 16*i
		copy(font[rec:], tag)
		putU32(font, rec+8, offset)
		putU32(font, rec+12, uint32(len(tables[tag])))
		offset += uint32(len(tables[tag])+3) &^ 3
	}
	for _, tag := range tags {
		padded := make([]byte, (len(tables[tag])+3)&^3)
		copy(padded, tables[tag])
		font = append(font, padded...)
	}
	return font
}

func headTable(unitsPerEm uint16) []byte {
	head := make([]byte, 54)
	putU32(head, 0, 0x00010000)
	putU32(head, 12, 0x5f0f3cf5)
	putU16(head, 18, unitsPerEm)
	return head
}

func maxpTable(numGlyphs uint16) []byte {
	maxp := make([]byte, 32)
	putU32(maxp, 0, 0x00010000)
	putU16(maxp, 4, numGlyphs)
	return maxp
}

// cmapFormat4 builds a cmap table with a single Windows BMP subtable mapping
// the range start..end to consecutive glyphs beginning at firstGlyph.
func cmapFormat4(start, end rune, firstGlyph uint16) []byte {
	sub := make([]byte, 32)
	putU16(sub, 0, 4)
	putU16(sub, 2, 32)
	putU16(sub, 6, 4) // 2 segments
	putU16(sub, 14, uint16(end))
	putU16(sub, 16, 0xffff)
	putU16(sub, 20, uint16(start))
	putU16(sub, 22, 0xffff)
	putU16(sub, 24, firstGlyph-uint16(start))
	putU16(sub, 26, 1) // 0xffff + 1 wraps to glyph 0
	cmap := make([]byte, 12, 12+len(sub))
	putU16(cmap, 2, 1)
	putU16(cmap, 4, 3) // Windows
	putU16(cmap, 6, 1) // Unicode BMP
	putU32(cmap, 8, 12)
	return append(cmap, sub...)
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
	header := make([]byte, 6+12*len(ids))
	putU16(header, 2, uint16(len(ids)))
	putU16(header, 4, uint16(len(header)))
	var storage []byte
	for i, id := range ids {
		value := utf16be(names[sfnt.NameID(id)])
		rec := 6 + 12*i
		putU16(header, rec, 3)   // Windows
		putU16(header, rec+2, 1) // Unicode BMP
		putU16(header, rec+4, 0x0409)
		putU16(header, rec+6, uint16(id))
		putU16(header, rec+8, uint16(len(value)))
		putU16(header, rec+10, uint16(len(storage)))
		storage = append(storage, value...)
	}
	return append(header, storage...)
}
