package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpreview/ot"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("fp-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for inspecting installed fonts and their Unicode coverage.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("list").
		SetDescription("List the fonts installed on this system, optionally filtered by a search pattern.").
		SetShortDescription("list installed fonts").
		AddArgument("pattern...", "search pattern matched against family and style", "").
		AddFlag("favorites,f", "only list favorite families", commando.Bool, nil).
		AddFlag("paths,p", "include font file paths", commando.Bool, nil).
		SetAction(runListCommand)

	commando.
		Register("coverage").
		SetDescription("Print Unicode block coverage for a font file.").
		SetShortDescription("block coverage").
		AddArgument("font", "font file path (TTF or OTF)", "").
		AddArgument("blocks...", "optional block names (e.g. Cyrillic,Basic Latin)", "").
		AddFlag("all,a", "include blocks without any coverage", commando.Bool, nil).
		AddFlag("sort,s", "row order: name|coverage", commando.String, "name").
		SetAction(runCoverageCommand)

	commando.
		Register("langs").
		SetDescription("Print language coverage for a font file.").
		SetShortDescription("language coverage").
		AddArgument("font", "font file path (TTF or OTF)", "").
		AddArgument("languages...", "optional language names (e.g. Polish,Greek)", "").
		AddFlag("missing,m", "list missing characters with their Unicode names", commando.Bool, nil).
		SetAction(runLangsCommand)

	commando.
		Register("info").
		SetDescription("Print diagnostics and table information for a font file.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path (TTF or OTF)", "").
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.
		Register("lookup").
		SetDescription("Look up glyph indices for codepoints in a font file.").
		SetShortDescription("glyph lookup").
		AddArgument("font", "font file path (TTF or OTF)", "").
		AddArgument("codepoints...", "codepoints (e.g. U+0041,U+00E4)", "").
		SetAction(runLookupCommand)

	commando.Parse(nil)
}

func mustLoadFont(path string) *ot.Font {
	b, err := os.ReadFile(path)
	if err != nil {
		fatalf("cannot read font %s: %v", path, err)
	}
	otf, err := ot.Parse(b)
	if err != nil {
		fatalf("cannot parse font %s: %v", path, err)
	}
	return otf
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// splitListArg splits a variadic commando argument on commas only, so that
// multi-word names like "Basic Latin" survive.
func splitListArg(raw string) []string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fp-tools: "+format+"\n", args...)
	os.Exit(1)
}
