package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/fontpreview/coverage"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runCoverageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	otf := mustLoadFont(fontPath)
	set := otf.Codepoints()
	includeAll := mustFlagBool(flags["all"], "all")
	order := strings.ToLower(strings.TrimSpace(mustFlagString(flags["sort"], "sort")))

	type row struct {
		block coverage.Block
		cov   float64
	}
	rows := make([]row, 0, len(coverage.Blocks))
	for _, block := range selectedBlocks(args["blocks"].Value) {
		cov := block.Coverage(set)
		if cov == 0 && !includeAll {
			continue
		}
		rows = append(rows, row{block, cov})
	}
	switch order {
	case "", "name":
		// selectedBlocks already yields name order
	case "coverage":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].cov > rows[j].cov })
	default:
		fatalf("unsupported sort order %q (expected name|coverage)", order)
	}
	for _, r := range rows {
		fmt.Printf("%-24s U+%04X..U+%04X %7.1f%%\n", r.block.Name, r.block.Lo, r.block.Hi, r.cov)
	}
}

// selectedBlocks resolves requested block names, or yields the whole
// reference table in name order.
func selectedBlocks(raw string) []coverage.Block {
	requested := splitListArg(raw)
	if len(requested) == 0 {
		names := coverage.BlockNames()
		blocks := make([]coverage.Block, 0, len(names))
		for _, name := range names {
			block, _ := coverage.BlockByName(name)
			blocks = append(blocks, block)
		}
		return blocks
	}
	blocks := make([]coverage.Block, 0, len(requested))
	for _, name := range requested {
		block, ok := coverage.BlockByName(name)
		if !ok {
			fatalf("unknown block: %s", name)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func runLangsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	otf := mustLoadFont(fontPath)
	set := otf.Codepoints()
	showMissing := mustFlagBool(flags["missing"], "missing")

	names := splitListArg(args["languages"].Value)
	if len(names) == 0 {
		names = coverage.LanguageNames()
	}
	for _, name := range names {
		lp, ok := coverage.LanguageByName(name)
		if !ok {
			fatalf("unknown language: %s", name)
		}
		cov, missing := lp.Coverage(set)
		fmt.Printf("%-20s %6.1f%%  missing=%d\n", lp.Name, cov, len(missing))
		if showMissing {
			for _, r := range missing {
				fmt.Printf("    U+%04X %s\n", r, runenames.Name(r))
			}
		}
	}
}
