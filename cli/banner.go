package cli

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/mattn/go-runewidth"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment positions text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding  = 2
	dividerPadding = 2

	DefaultTerminalWidth = 80
)

// bannersSuppressed reports whether SORTBENCH_NO_BANNER asks for plain output.
func bannersSuppressed() bool {
	return envutil.Bool("SORTBENCH_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// TerminalWidth returns the width from COLUMNS, or DefaultTerminalWidth.
func TerminalWidth() int {
	w := envutil.Int[int]("COLUMNS").ValueOrElse(DefaultTerminalWidth)
	if w <= bannerPadding {
		return DefaultTerminalWidth
	}

	return w
}

func DividerAutoWidth() string {
	return Divider(TerminalWidth())
}

func BannerAutoWidth(s string, a Alignment) string {
	return Banner(s, TerminalWidth(), a)
}

func Divider(width int) string {
	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, max(width-dividerPadding, 0)), dividerRight)
}

// Banner draws s inside a box width columns wide. Lines that do not fit are
// truncated with an ellipsis. Wide runes count as two columns.
func Banner(s string, width int, alignment Alignment) string {
	if bannersSuppressed() {
		return s + "\n"
	}

	if width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		line, ok := pad(l, inner, alignment)
		if !ok {
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func pad(text string, width int, alignment Alignment) (string, bool) {
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}

	diff := width - runewidth.StringWidth(text)

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff), true
	case AlignRight:
		return strings.Repeat(" ", diff) + text, true
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left), true
	default:
		return "", false
	}
}
