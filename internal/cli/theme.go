// FILE: internal/cli/theme.go
package cli

import (
	"fmt"
	"strings"

	"silverpoint/internal/engine"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

func parseTheme(name string) (ColorTheme, error) {
	theme := ColorTheme(strings.ToLower(name))
	if _, ok := themes[theme]; !ok {
		return "", fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", name)
	}
	return theme, nil
}

// RenderBoard draws b with rank 8 at the top, using piece glyphs and the
// theme's square colors.
func RenderBoard(b engine.Board, theme ColorTheme) string {
	colors := themes[theme]
	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for row := 7; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < 8; col++ {
			piece, ok := b.Piece(engine.NewPosition(row, col))

			if theme == ThemeOff {
				if !ok {
					sb.WriteString(". ")
				} else {
					sb.WriteString(piece.String() + " ")
				}
				continue
			}

			bg := colors.darkBg
			if (row+col)%2 == 1 {
				bg = colors.lightBg
			}
			if !ok {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, colors.reset))
				continue
			}
			fg := colors.black
			if piece.Color() == engine.White {
				fg = colors.white
			}
			sb.WriteString(fmt.Sprintf("%s%s%s %s", bg, fg, piece, colors.reset))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", row+1))
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
