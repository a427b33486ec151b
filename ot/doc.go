/*
Package ot provides access to OpenType font tables.
Intended audience for this package are:

▪︎ font pickers and previewers, which need to know which characters a font is
able to display

▪︎ any application needing to have the internal structure of an OpenType font file
available, and possibly extending the methods of package `ot` by handling
additional font tables

Package `ot` exposes the tables of a font to clients, but interprets them only
as far as character coverage queries require: the character-to-glyph mapping
(table 'cmap') is decoded completely, a handful of scalar fields of 'head' and
'maxp' are made accessible, and every other table is carried as an opaque
binary block. It is, for example, not possible to ask package `ot` for a
kerning distance between two glyphs; clients have to check for the availability
of kerning information and consult the appropriate table(s) themselves. From
this point of view, `ot` is a low-level package. Functions for querying font
metadata are homed in a sister package.

OpenType fonts contain a whole lot of different tables and sub-tables, and the
same information may be encoded in a variety of formats. Package `ot` abstracts
away some implementation details of fonts:

▪︎ Format versions: the character-to-glyph mapping may occur in a number of
subtable formats. `ot` selects one and hides the concrete format behind a
uniform lookup interface.

▪︎ Bugs in fonts: many fonts in the wild contain entries that—strictly speaking—infringe
upon the OT specification, but an application using them should not fail because of
recoverable errors. Package `ot` collects recoverable issues during parsing and
lets clients decide how much sloppiness they are willing to accept.

# Status

Work in progress. Handling fonts is fiddly and fonts have become complex software
applications in their own right. Font data files are a vast desert of bytes
without any sign posts; expect the occasional mirage.

No font collections nor variable fonts are supported yet, but will be in time.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

Some code has originally been copied over from golang.org/x/image/font/sfnt/cmap.go,
as the cmap-routines are not accessible through the sfnt package's API.
I understand this to be legally okay as long as the Go license information
stays intact.

	Copyright 2017 The Go Authors. All rights reserved.
	Use of this source code is governed by a BSD-style
	license that can be found in the LICENSE file.

The license file mentioned can be found in file GO-LICENSE at the root folder
of this module.
*/
package ot

/*
There are (at least) two Go packages around for parsing SFNT fonts:

▪ https://pkg.go.dev/golang.org/x/image/font/sfnt

▪ https://pkg.go.dev/github.com/ConradIrwin/font/sfnt

It's always a good idea to prefer packages from the Go core team, and this
module does use x/image/font/sfnt for what its API covers well, e.g. reading
name table entries. However, the sfnt package keeps its character-to-glyph
routines private: there is no way to enumerate the codepoints a font covers
without probing every rune of the Unicode range through a rasterizer-oriented
API. Coverage queries are the central operation for a font previewer, hence
this package does its own table parsing, with the cmap routines following the
x/image code they originate from.

ConradIrwin/font allows access to the font tables it has parsed. However, its
focus is on font file manipulation (read in ⇒ manipulate ⇒ export), thus
access to tables means more or less access to the tables binaries and
doing much of the interpretation on the client side. Following the approach of
the Go core team, this package keeps the initial font binary in memory as a
single block and navigates it in place, not copying out more than small
decoded structures.
*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpreview.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview.ot")
}
