package fontpreview

import "github.com/npillmayer/fontpreview/fclist"

// CompareCapacity is the number of fonts a comparison holds at most.
const CompareCapacity = 4

// CompareSet is an ordered selection of fonts for side-by-side coverage
// comparison. Fonts are identified by their file path: adding a font already
// present is a no-op, adding to a full selection evicts the oldest entry.
//
// The zero value is an empty selection, ready for use.
type CompareSet struct {
	fonts []fclist.FontInfo
}

// Add puts a font descriptor into the selection.
func (cs *CompareSet) Add(fi fclist.FontInfo) {
	for _, present := range cs.fonts {
		if present.Path == fi.Path {
			return
		}
	}
	if len(cs.fonts) >= CompareCapacity {
		cs.fonts = cs.fonts[1:]
	}
	cs.fonts = append(cs.fonts, fi)
}

// Fonts returns the selected fonts in insertion order.
func (cs *CompareSet) Fonts() []fclist.FontInfo {
	return append([]fclist.FontInfo{}, cs.fonts...)
}

// Len returns the number of selected fonts.
func (cs *CompareSet) Len() int {
	return len(cs.fonts)
}

// Clear empties the selection.
func (cs *CompareSet) Clear() {
	cs.fonts = nil
}
