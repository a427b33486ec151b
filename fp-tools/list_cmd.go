package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/favorites"
	"github.com/thatisuday/commando"
)

func runListCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	pattern := strings.TrimSpace(strings.ReplaceAll(args["pattern"].Value, ",", " "))
	onlyFavorites := mustFlagBool(flags["favorites"], "favorites")
	withPaths := mustFlagBool(flags["paths"], "paths")

	fonts := fclist.InstalledFonts(context.Background(), nil)
	favs := favorites.Store{}.Load()
	count := 0
	for _, fi := range fonts {
		if pattern != "" && !fi.Match(pattern) {
			continue
		}
		fav := favs.Has(fi.Family)
		if onlyFavorites && !fav {
			continue
		}
		mark := " "
		if fav {
			mark = "*"
		}
		if withPaths {
			fmt.Printf("%s %-44s %s\n", mark, fi.DisplayName(), fi.Path)
		} else {
			fmt.Printf("%s %s\n", mark, fi.DisplayName())
		}
		count++
	}
	fmt.Printf("%d fonts\n", count)
}
