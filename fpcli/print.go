package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpreview"
	"github.com/npillmayer/fontpreview/coverage"
	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/ot"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func printFontList(fonts []fclist.FontInfo) {
	data := [][]string{{"#", "", "Family", "Style"}}
	for i, fi := range fonts {
		mark := " "
		if fi.Favorite {
			mark = "*"
		}
		data = append(data, []string{strconv.Itoa(i + 1), mark, fi.Family, fi.Style})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func blocksOp(intp *Intp, args []string) (error, bool) {
	cur, err := intp.selected()
	if err != nil {
		return err, false
	}
	data := [][]string{{"Block", "Range", "Coverage"}}
	shown := 0
	for _, name := range coverage.BlockNames() {
		block, _ := coverage.BlockByName(name)
		cov := block.Coverage(cur.coverage)
		if cov == 0 {
			continue // blocks the font does not touch are just noise
		}
		shown++
		data = append(data, []string{
			block.Name,
			fmt.Sprintf("U+%04X..U+%04X", block.Lo, block.Hi),
			formatPercent(cov),
		})
	}
	if shown == 0 {
		pterm.Info.Println("font covers none of the reference blocks")
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d of %d blocks covered\n", shown, len(coverage.Blocks))
	return nil, false
}

func langsOp(intp *Intp, args []string) (error, bool) {
	cur, err := intp.selected()
	if err != nil {
		return err, false
	}
	if len(args) > 0 {
		return langDetail(cur, strings.Join(args, " ")), false
	}
	data := [][]string{{"Language", "Coverage", "Missing"}}
	for _, name := range coverage.LanguageNames() {
		cov, missing := coverage.LanguageCoverage(cur.coverage, name)
		data = append(data, []string{name, formatPercent(cov), strconv.Itoa(len(missing))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// langDetail prints coverage of a single language and names the missing
// characters when there are few enough to be useful.
func langDetail(cur *selectedFont, language string) error {
	lp, ok := coverage.LanguageByName(language)
	if !ok {
		return fmt.Errorf("unknown language: %s", language)
	}
	cov, missing := lp.Coverage(cur.coverage)
	pterm.Printf("%s: %s covered, %d characters missing\n",
		lp.Name, formatPercent(cov), len(missing))
	if len(missing) == 0 || len(missing) > 20 {
		return nil
	}
	for _, r := range missing {
		pterm.Printf("  U+%04X %s\n", r, runenames.Name(r))
	}
	return nil
}

// printCompare renders block coverage of up to 4 fonts side by side. Rows
// where every font is at zero are dropped.
func printCompare(fonts []fclist.FontInfo) {
	sets := make([]ot.CodepointSet, len(fonts))
	header := []string{"Block"}
	for i, fi := range fonts {
		sets[i] = fontpreview.FontCoverage(fi.Path)
		header = append(header, fi.DisplayName())
	}
	data := [][]string{header}
	for _, name := range coverage.BlockNames() {
		block, _ := coverage.BlockByName(name)
		row := []string{name}
		nonzero := false
		for _, set := range sets {
			cov := block.Coverage(set)
			if cov > 0 {
				nonzero = true
			}
			row = append(row, formatPercent(cov))
		}
		if nonzero {
			data = append(data, row)
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatPercent(cov float64) string {
	return fmt.Sprintf("%.1f%%", cov)
}
