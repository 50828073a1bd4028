// FILE: internal/cli/palette.go
package cli

// Terminal color codes
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// Palette colors REPL output; the zero value prints plain text
type Palette struct {
	Reset, Red, Green, Yellow, Magenta, Cyan string
}

func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Reset:   ansiReset,
		Red:     ansiRed,
		Green:   ansiGreen,
		Yellow:  ansiYellow,
		Magenta: ansiMagenta,
		Cyan:    ansiCyan,
	}
}

// Prompt returns a colored prompt string
func (p Palette) Prompt(text string) string {
	return p.Yellow + text + " > " + p.Reset
}
