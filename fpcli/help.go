package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, args []string) (error, bool) {
	topic := ""
	if len(args) > 0 {
		topic = args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "block", "blocks":
		pterm.Info.Println("Block coverage")
		pterm.Println(`
	blocks shows how much of each Unicode block the selected font covers.
	A block is a named contiguous codepoint range, e.g. "Basic Latin" or
	"Cyrillic". Coverage is the percentage of the block's codepoints the
	font maps to a glyph. Blocks without any coverage are hidden.
	`)
	case "lang", "langs", "language", "languages":
		pterm.Info.Println("Language coverage")
		pterm.Println(`
	langs measures how completely the selected font supports a language,
	against a profile of exemplar characters. 100% means every exemplar
	character has a glyph.

	langs             coverage table over all language profiles
	langs <name>      details for one language, naming missing characters
	`)
	case "compare":
		pterm.Info.Println("Font comparison")
		pterm.Println(`
	compare collects up to 4 fonts (by listing index) and renders their
	block coverage side by side. Adding a 5th font drops the oldest one.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	list [pattern]    installed fonts, filtered by pattern
	use <n>           select font no. n from the last listing
	fav <n>           toggle favorite status of font no. n
	favs              list favorite families
	info              names and key figures of the selected font
	blocks            Unicode block coverage of the selected font
	langs [name]      language coverage of the selected font
	lookup <cp...>    glyph indices for codepoints (e.g. U+0041)
	compare [n...]    side-by-side block coverage of up to 4 fonts
	help [topic]      this text; topics: blocks, langs, compare
	quit              exit (also <ctrl>D)
	`)
	}
}
