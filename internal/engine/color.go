// FILE: internal/engine/color.go
package engine

type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

func (c Color) GoString() string {
	return "Color(" + c.String() + ")"
}

// Compare orders White before Black
func (c Color) Compare(o Color) int {
	return cmpInt(int(c), int(o))
}

// backRow is the row a color's pieces start on
func (c Color) backRow() int {
	if c == White {
		return 0
	}
	return 7
}

// forward is the row delta of a pawn step
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
