package effect

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var styleAttrs = map[string]color.Attribute{
	"bold":      color.Bold,
	"dim":       color.Faint,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"reverse":   color.ReverseVideo,
	"strike":    color.CrossedOut,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgHiBlack,
	"grey":    color.FgHiBlack,
}

// colors without a basic ANSI code
var styleRGB = map[string][3]int{
	"orange": {255, 165, 0},
	"pink":   {255, 0, 196},
}

// ParseStyle converts a style spec into a color. Words may appear in any
// order, so "bold green" and "green bold" are the same style. The default
// style parses to nil.
func ParseStyle(s Style) (*color.Color, error) {
	words := strings.Fields(strings.ToLower(string(s)))
	if len(words) == 0 {
		return nil, nil
	}
	c := color.New()
	for _, w := range words {
		if a, ok := styleAttrs[w]; ok {
			c.Add(a)
			continue
		}
		if rgb, ok := styleRGB[w]; ok {
			c.AddRGB(rgb[0], rgb[1], rgb[2])
			continue
		}
		return nil, fmt.Errorf("%w: unknown word %q in %q", ErrBadStyle, w, string(s))
	}
	return c, nil
}
