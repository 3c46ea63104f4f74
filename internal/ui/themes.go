package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"tmt/internal/palette"
)

const (
	nameWidth  = 25
	colorWidth = 10
)

// ThemeListHeader is the header line of the theme list.
var ThemeListHeader = "   #  " + pad("THEME", nameWidth) + " BACKGROUND FOREGROUND"

// ThemeRow formats one line of the theme list without colors. index is 1-based.
func ThemeRow(index int, t palette.Theme) string {
	return fmt.Sprintf("  %2d. %s %s %s", index, pad(t.Name, nameWidth), pad(t.Background, colorWidth), pad(t.Foreground, colorWidth))
}

// RenderThemeList renders the header and one line per theme, each line painted
// with that theme's foreground on its background.
func RenderThemeList(themes []palette.Theme) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(ThemeListHeader))
	b.WriteString("\n")
	for i, t := range themes {
		b.WriteString(ThemeStyle(t.Background, t.Foreground).Render(ThemeRow(i+1, t)))
		b.WriteString("\n")
	}
	return b.String()
}

// pad right-pads s to width display cells. Longer strings are truncated.
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	return runewidth.FillRight(s, width)
}
