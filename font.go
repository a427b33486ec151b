/*
Package fontpreview inspects the fonts installed on a system.

It answers three questions every font picker and previewer has to ask:

▪︎ Which fonts are installed? Enumeration is delegated to fontconfig's
fc-list utility and yields descriptors carrying family, style and file
location (package fclist).

▪︎ Which characters can a font display? The font file is parsed just far
enough to decode its character-to-glyph mapping into a set of codepoints
(package ot).

▪︎ How complete is a font's support for a script or a language? Coverage of
Unicode blocks and of per-language exemplar characters is computed as a
percentage over read-only reference tables (package coverage).

The root package bundles the subpackages into a small facade. Its functions
absorb the failures a browsing session should shrug off: a missing fc-list
or an unreadable font file results in an empty answer, not an error. Clients
with finer-grained needs use the subpackages directly.

# Status

Does not yet contain methods for font collections (*.ttc), e.g.,
/System/Library/Fonts/Helvetica.ttc on Mac OS.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontpreview

import (
	"context"
	"os"

	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/favorites"
	"github.com/npillmayer/fontpreview/internal/fontload"
	"github.com/npillmayer/fontpreview/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpreview'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview")
}

// InstalledFonts enumerates the fonts installed on the system and overlays
// each descriptor with its favorite status from the default favorites store.
// Systems without fontconfig yield an empty list.
func InstalledFonts(ctx context.Context) []fclist.FontInfo {
	fonts := fclist.InstalledFonts(ctx, nil)
	return overlayFavorites(fonts, favorites.Store{}.Load())
}

func overlayFavorites(fonts []fclist.FontInfo, favs favorites.Set) []fclist.FontInfo {
	for i := range fonts {
		fonts[i].Favorite = favs.Has(fonts[i].Family)
	}
	return fonts
}

// FontCoverage reads a font file and returns the set of codepoints it maps
// to glyphs. Every failure along the way, from a missing file to a corrupt
// character map, degrades to an empty set; absorbed failures are traced at
// debug level.
func FontCoverage(path string) ot.CodepointSet {
	data, err := os.ReadFile(path)
	if err != nil {
		tracer().Debugf("coverage of %s: %v", path, err)
		return ot.NewCodepointSet()
	}
	otf, err := ot.Parse(data)
	if err != nil {
		tracer().Debugf("coverage of %s: %v", path, err)
		return ot.NewCodepointSet()
	}
	return otf.Codepoints()
}

// LoadFont loads an OpenType font (TTF or OTF) from a file and determines
// its full display name.
func LoadFont(path string) (*fontload.ScalableFont, error) {
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}
