package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/fontpreview/otquery"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	otf := mustLoadFont(fontPath)

	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Type: %s\n", otquery.FontType(otf))
	names := otquery.NameInfo(otf)
	if family := names["family"]; family != "" {
		fmt.Printf("Family: %s\n", family)
	}
	if sub := names["subfamily"]; sub != "" {
		fmt.Printf("Subfamily: %s\n", sub)
	}
	if version := names["version"]; version != "" {
		fmt.Printf("Version: %s\n", version)
	}
	if head, ok := otquery.HeadInfo(otf); ok {
		fmt.Printf("Units/em: %d\n", head.UnitsPerEm)
	}
	if maxp, ok := otquery.MaxPInfo(otf); ok {
		fmt.Printf("Glyphs: %d\n", maxp.NumGlyphs)
	}
	fmt.Printf("Covered codepoints: %d\n", otf.Codepoints().Len())

	tags := otf.TableTags()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	fmt.Printf("Tables (%d):\n", len(tags))
	for _, tag := range tags {
		off, size := otf.Table(tag).Extent()
		fmt.Printf("  %s  offset=%-8d size=%d\n", tag.String(), off, size)
	}

	errs := otf.Errors()
	warns := otf.Warnings()
	fmt.Printf("Issues: errors=%d warnings=%d critical=%d\n",
		len(errs), len(warns), len(otf.CriticalErrors()))
	if mustFlagBool(flags["errors"], "errors") {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, w := range warns {
			fmt.Printf("warning: %s\n", w.String())
		}
	}
}

func runLookupCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	otf := mustLoadFont(fontPath)
	tokens := splitCSVSpace(args["codepoints"].Value)
	if len(tokens) == 0 {
		fatalf("no codepoints given")
	}
	for _, token := range tokens {
		r, err := parseCodepointToken(token)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("U+%04X %s -> glyph %d\n", r, runenames.Name(r), otquery.GlyphIndex(otf, r))
	}
}
