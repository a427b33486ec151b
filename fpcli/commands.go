package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpreview"
	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// refreshFonts enumerates the installed fonts, filters them by pattern and
// renders the numbered listing which use/fav commands refer to.
func (intp *Intp) refreshFonts(pattern string) {
	fonts := fclist.InstalledFonts(context.Background(), nil)
	if pattern != "" {
		filtered := fonts[:0]
		for _, fi := range fonts {
			if fi.Match(pattern) {
				filtered = append(filtered, fi)
			}
		}
		fonts = filtered
	}
	for i := range fonts {
		fonts[i].Favorite = intp.favs.Has(fonts[i].Family)
	}
	intp.fonts = fonts
	if len(fonts) == 0 {
		pterm.Info.Println("no fonts found")
		return
	}
	printFontList(fonts)
}

func listOp(intp *Intp, args []string) (error, bool) {
	intp.refreshFonts(strings.Join(args, " "))
	return nil, false
}

// fontAt resolves a 1-based index into the last listing.
func (intp *Intp) fontAt(arg string) (fclist.FontInfo, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fclist.FontInfo{}, fmt.Errorf("font index not numeric: %s", arg)
	}
	if n < 1 || n > len(intp.fonts) {
		return fclist.FontInfo{}, fmt.Errorf("font index out of range: %d", n)
	}
	return intp.fonts[n-1], nil
}

func (intp *Intp) selected() (*selectedFont, error) {
	if intp.current == nil {
		return nil, errors.New("no font selected (use <n>)")
	}
	return intp.current, nil
}

func useOp(intp *Intp, args []string) (error, bool) {
	if len(args) == 0 {
		return errors.New("usage: use <n>"), false
	}
	fi, err := intp.fontAt(args[0])
	if err != nil {
		return err, false
	}
	return intp.selectFont(fi), false
}

// selectFont parses the font behind a descriptor and memoizes its coverage.
func (intp *Intp) selectFont(fi fclist.FontInfo) error {
	data, err := os.ReadFile(fi.Path)
	if err != nil {
		return err
	}
	otf, err := fontpreview.FromBinary(data)
	if err != nil {
		return err
	}
	intp.current = &selectedFont{
		info:     fi,
		otf:      otf,
		coverage: otf.Codepoints(),
	}
	tracer().Infof("selected font %s", fi.DisplayName())
	pterm.Printf("font tables: %v\n", otf.TableTags())
	return nil
}

func favOp(intp *Intp, args []string) (error, bool) {
	if len(args) == 0 {
		return errors.New("usage: fav <n>"), false
	}
	fi, err := intp.fontAt(args[0])
	if err != nil {
		return err, false
	}
	intp.favs.Toggle(fi.Family)
	if err := intp.store.Save(intp.favs); err != nil {
		return err, false
	}
	for i := range intp.fonts {
		intp.fonts[i].Favorite = intp.favs.Has(intp.fonts[i].Family)
	}
	if intp.favs.Has(fi.Family) {
		pterm.Printf("%s is now a favorite\n", fi.Family)
	} else {
		pterm.Printf("%s is no longer a favorite\n", fi.Family)
	}
	return nil, false
}

func favsOp(intp *Intp, args []string) (error, bool) {
	families := intp.favs.Families()
	if len(families) == 0 {
		pterm.Info.Println("no favorites yet")
		return nil, false
	}
	for _, family := range families {
		pterm.Printf("* %s\n", family)
	}
	return nil, false
}

func infoOp(intp *Intp, args []string) (error, bool) {
	cur, err := intp.selected()
	if err != nil {
		return err, false
	}
	names := otquery.NameInfo(cur.otf)
	data := [][]string{
		{"Property", "Value"},
		{"Family", names["family"]},
		{"Subfamily", names["subfamily"]},
		{"Full name", names["fullname"]},
		{"Version", names["version"]},
		{"Type", otquery.FontType(cur.otf)},
		{"File", cur.info.Path},
	}
	if head, ok := otquery.HeadInfo(cur.otf); ok {
		data = append(data, []string{"Units per em", strconv.Itoa(int(head.UnitsPerEm))})
	}
	if maxp, ok := otquery.MaxPInfo(cur.otf); ok {
		data = append(data, []string{"Total glyphs", strconv.Itoa(int(maxp.NumGlyphs))})
	}
	data = append(data, []string{"Covered codepoints", strconv.Itoa(cur.coverage.Len())})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func lookupOp(intp *Intp, args []string) (error, bool) {
	cur, err := intp.selected()
	if err != nil {
		return err, false
	}
	if len(args) == 0 {
		return errors.New("usage: lookup <codepoint...>"), false
	}
	for _, token := range args {
		r, err := parseCodepointToken(token)
		if err != nil {
			return err, false
		}
		if gid := otquery.GlyphIndex(cur.otf, r); gid == 0 {
			pterm.Printf("U+%04X %s: not covered\n", r, runenames.Name(r))
		} else {
			pterm.Printf("U+%04X %s: glyph %d\n", r, runenames.Name(r), gid)
		}
	}
	return nil, false
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

func compareOp(intp *Intp, args []string) (error, bool) {
	for _, arg := range args {
		fi, err := intp.fontAt(arg)
		if err != nil {
			return err, false
		}
		intp.cmp.Add(fi)
	}
	if intp.cmp.Len() == 0 {
		pterm.Info.Println("nothing to compare (compare <n> [m...])")
		return nil, false
	}
	printCompare(intp.cmp.Fonts())
	return nil, false
}
