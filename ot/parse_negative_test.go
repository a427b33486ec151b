package ot

import (
	"encoding/binary"
	"strings"
	"testing"
)

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

func TestParseMalformedFont(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		if _, err := Parse(nil); err == nil {
			t.Fatalf("expected parsing of empty input to fail, did not")
		}
	})

	t.Run("UnknownMagic", func(t *testing.T) {
		b := make([]byte, 12)
		putU32(b, 0, 0xdeadbeef)
		if _, err := Parse(b); err == nil {
			t.Fatalf("expected parse error for unknown font type")
		}
	})

	t.Run("TruncatedTableRecords", func(t *testing.T) {
		// header announces 2 tables but carries no table records
		b := make([]byte, 12)
		putU32(b, 0, 0x00010000)
		putU16(b, 4, 2)
		if _, err := Parse(b); err == nil {
			t.Fatalf("expected parse error for truncated table records")
		}
	})

	t.Run("HugeTableCount", func(t *testing.T) {
		b := make([]byte, 12)
		putU32(b, 0, 0x00010000)
		putU16(b, 4, 0xffff)
		if _, err := Parse(b); err == nil {
			t.Fatalf("expected parse error for absurd table count")
		}
	})

	t.Run("TableOrderViolation", func(t *testing.T) {
		font := buildFont(map[string][]byte{
			"cmap": {0, 0, 0, 0},
			"head": headTable(1000),
		})
		// swap the two table records, breaking the ascending tag order
		rec := make([]byte, 16)
		copy(rec, font[12:28])
		copy(font[12:28], font[28:44])
		copy(font[28:44], rec)
		_, err := Parse(font, IsTestfont)
		if err == nil {
			t.Fatalf("expected parse error for unsorted table records")
		}
		if !strings.Contains(err.Error(), "table order") {
			t.Errorf("expected error to report table order, is %q", err.Error())
		}
	})

	t.Run("MisalignedTableOffset", func(t *testing.T) {
		font := buildFont(map[string][]byte{
			"head": headTable(1000),
		})
		putU32(font, 12+8, uint32(len(font))-2) // not on a 4-byte boundary
		if _, err := Parse(font, IsTestfont); err == nil {
			t.Fatalf("expected parse error for misaligned table offset")
		}
	})

	t.Run("TableBoundsExceeded", func(t *testing.T) {
		font := buildFont(map[string][]byte{
			"head": headTable(1000),
		})
		putU32(font, 12+12, 0x1000) // size extends beyond end of input
		if _, err := Parse(font, IsTestfont); err == nil {
			t.Fatalf("expected parse error for table bounds beyond input")
		}
	})

	t.Run("TableSizeOverflow", func(t *testing.T) {
		font := buildFont(map[string][]byte{
			"head": headTable(1000),
		})
		putU32(font, 12+8, 0xfffffffc)
		putU32(font, 12+12, 8) // offset + size overflows uint32
		if _, err := Parse(font, IsTestfont); err == nil {
			t.Fatalf("expected parse error for table size overflow")
		}
	})
}

func TestParseMalformedCMap(t *testing.T) {
	parseCMapFont := func(sub []byte, pid, psid uint16) error {
		font := buildFont(map[string][]byte{
			"cmap": cmapTable(cmapRec{pid, psid, sub}),
		})
		_, err := Parse(font, IsTestfont)
		return err
	}

	t.Run("NoSupportedSubtable", func(t *testing.T) {
		err := parseCMapFont(cmapFormat4([3]uint16{'A', 'Z', 1}), 7, 7)
		if err == nil {
			t.Fatalf("expected parse error for unsupported platform/encoding")
		}
		if !strings.Contains(err.Error(), "no supported cmap format") {
			t.Errorf("expected error to report missing cmap format, is %q", err.Error())
		}
	})

	t.Run("SubtableOffsetOutOfBounds", func(t *testing.T) {
		// one encoding record pointing past the end of the cmap table
		b := make([]byte, 12)
		putU16(b, 2, 1)
		putU16(b, 4, pidWindows)
		putU16(b, 6, psidWindowsUCS2)
		putU32(b, 8, 0x0200)
		font := buildFont(map[string][]byte{"cmap": b})
		if _, err := Parse(font, IsTestfont); err == nil {
			t.Fatalf("expected parse error for out-of-bounds subtable offset")
		}
	})

	t.Run("Format4OddSegmentCount", func(t *testing.T) {
		sub := make([]byte, 32)
		putU16(sub, 0, 4)
		putU16(sub, 6, 5) // segCountX2 must be even
		if err := parseCMapFont(sub, pidWindows, psidWindowsUCS2); err == nil {
			t.Fatalf("expected parse error for odd segment count")
		}
	})

	t.Run("Format4TooManySegments", func(t *testing.T) {
		sub := make([]byte, 32)
		putU16(sub, 0, 4)
		putU16(sub, 6, 50000) // 25000 segments
		if err := parseCMapFont(sub, pidWindows, psidWindowsUCS2); err == nil {
			t.Fatalf("expected parse error for absurd segment count")
		}
	})

	t.Run("Format4SegmentArraysTruncated", func(t *testing.T) {
		sub := cmapFormat4([3]uint16{'A', 'Z', 1})
		if err := parseCMapFont(sub[:len(sub)-4], pidWindows, psidWindowsUCS2); err == nil {
			t.Fatalf("expected parse error for truncated segment arrays")
		}
	})

	t.Run("Format6EntriesTruncated", func(t *testing.T) {
		sub := cmapFormat6(0x20, 1, 2, 3)
		putU16(sub, 8, 10) // announces 10 entries, carries 3
		if err := parseCMapFont(sub, pidWindows, psidWindowsUCS2); err == nil {
			t.Fatalf("expected parse error for truncated format 6 entries")
		}
	})

	t.Run("Format12LengthMismatch", func(t *testing.T) {
		sub := cmapFormat12([3]uint32{'A', 'Z', 1}, [3]uint32{0x1f600, 0x1f64f, 100})
		putU32(sub, 4, 28) // length inconsistent with 2 groups
		if err := parseCMapFont(sub, pidWindows, psidWindowsUCS4); err == nil {
			t.Fatalf("expected parse error for inconsistent format 12 length")
		}
	})

	t.Run("Format0BadLength", func(t *testing.T) {
		sub := cmapFormat0(map[byte]byte{'A': 1})
		putU16(sub, 2, 200) // length must be 262
		if err := parseCMapFont(sub, pidMacintosh, psidMacintoshRoman); err == nil {
			t.Fatalf("expected parse error for wrong format 0 length")
		}
	})
}
