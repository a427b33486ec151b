// Package otquery provides read-only queries over a parsed ot.Font,
// decoding the font's informational tables directly from their raw bytes.
package otquery

import (
	"github.com/npillmayer/fontpreview/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to the tracer with key 'fontpreview'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview")
}

// FontType returns a description of the font's container format: "TrueType",
// "CFF" for fonts with PostScript outlines, or "Mac TrueType" for legacy
// Macintosh fonts. An unrecognized container yields the empty string.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return ""
	}
	switch otf.Header.FontType {
	case 0x4f54544f: // OTTO
		return "CFF"
	case 0x00010000:
		return "TrueType"
	case 0x74727565: // 'true'
		return "Mac TrueType"
	}
	return ""
}

// NameInfo collects identifying entries from a font's name table. Keys
// yielded when present: "family", "subfamily", "fullname", "version".
func NameInfo(otf *ot.Font) map[string]string {
	info := map[string]string{}
	for nameID, value := range NamesRange(otf) {
		switch nameID {
		case sfnt.NameIDFamily:
			info["family"] = value
		case sfnt.NameIDSubfamily:
			info["subfamily"] = value
		case sfnt.NameIDFull:
			info["fullname"] = value
		case sfnt.NameIDVersion:
			info["version"] = value
		}
	}
	return info
}
