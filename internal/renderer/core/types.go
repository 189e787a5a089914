// Package core holds the cell and style types shared by the renderer and
// its backends. It has no dependencies so both sides can import it.
package core

import "strconv"

// Attr is a set of text attributes.
type Attr uint8

// Text attribute flags.
const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has reports whether a contains every attribute in attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr == attr
}

// Color is a terminal palette index (0-255). ColorDefault leaves the
// terminal's own color in place.
type Color int16

// ColorDefault is the terminal's default foreground or background.
const ColorDefault Color = -1

// String returns "default" or the palette index.
func (c Color) String() string {
	if c == ColorDefault {
		return "default"
	}
	return "palette(" + strconv.Itoa(int(c)) + ")"
}

// Style is the look of one cell. Styles are comparable with ==.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{Fg: ColorDefault, Bg: ColorDefault}
}

// Reverse returns s with foreground and background swapped on screen.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Bold returns s in bold.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Colors returns s with the given foreground and background.
func (s Style) Colors(fg, bg Color) Style {
	s.Fg, s.Bg = fg, bg
	return s
}

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell returns a cell showing r in the default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Style: DefaultStyle()}
}

// NewStyledCell returns a cell showing r in style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
