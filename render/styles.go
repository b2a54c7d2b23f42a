package render

import (
	"fmt"
	"sort"
)

// BoxStyle defines the characters used to draw a border.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// DefaultBoxStyle uses rounded corners
var DefaultBoxStyle = BoxStyles["rounded"]

// BoxStyles defines the available border styles by name
var BoxStyles = map[string]BoxStyle{
	"rounded": boxStyle("╭╮╰╯─│"),
	"sharp":   boxStyle("┌┐└┘─│"),
	"double":  boxStyle("╔╗╚╝═║"),
	"thick":   boxStyle("┏┓┗┛━┃"),
	"ascii":   boxStyle("++++-|"),
}

// boxStyle reads six glyphs: top-left, top-right, bottom-left, bottom-right,
// horizontal, vertical.
func boxStyle(glyphs string) BoxStyle {
	r := []rune(glyphs)
	return BoxStyle{
		TopLeft:     r[0],
		TopRight:    r[1],
		BottomLeft:  r[2],
		BottomRight: r[3],
		Horizontal:  r[4],
		Vertical:    r[5],
	}
}

// LookupBoxStyle returns the named style.
func LookupBoxStyle(name string) (BoxStyle, error) {
	style, ok := BoxStyles[name]
	if !ok {
		return BoxStyle{}, fmt.Errorf("unknown box style %q (available: %v)", name, BoxStyleNames())
	}
	return style, nil
}

// BoxStyleNames returns the style names in alphabetical order.
func BoxStyleNames() []string {
	names := make([]string, 0, len(BoxStyles))
	for name := range BoxStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
