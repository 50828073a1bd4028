// FILE: internal/engine/position.go
package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPosition = errors.New("invalid position")

// Position is a board coordinate. Row 0 is rank 1, column 0 is file a.
type Position struct {
	row int8
	col int8
}

// Named squares, a1 origin.
var (
	A1, A2, A3, A4, A5, A6, A7, A8 = sq(0, 0), sq(1, 0), sq(2, 0), sq(3, 0), sq(4, 0), sq(5, 0), sq(6, 0), sq(7, 0)
	B1, B2, B3, B4, B5, B6, B7, B8 = sq(0, 1), sq(1, 1), sq(2, 1), sq(3, 1), sq(4, 1), sq(5, 1), sq(6, 1), sq(7, 1)
	C1, C2, C3, C4, C5, C6, C7, C8 = sq(0, 2), sq(1, 2), sq(2, 2), sq(3, 2), sq(4, 2), sq(5, 2), sq(6, 2), sq(7, 2)
	D1, D2, D3, D4, D5, D6, D7, D8 = sq(0, 3), sq(1, 3), sq(2, 3), sq(3, 3), sq(4, 3), sq(5, 3), sq(6, 3), sq(7, 3)
	E1, E2, E3, E4, E5, E6, E7, E8 = sq(0, 4), sq(1, 4), sq(2, 4), sq(3, 4), sq(4, 4), sq(5, 4), sq(6, 4), sq(7, 4)
	F1, F2, F3, F4, F5, F6, F7, F8 = sq(0, 5), sq(1, 5), sq(2, 5), sq(3, 5), sq(4, 5), sq(5, 5), sq(6, 5), sq(7, 5)
	G1, G2, G3, G4, G5, G6, G7, G8 = sq(0, 6), sq(1, 6), sq(2, 6), sq(3, 6), sq(4, 6), sq(5, 6), sq(6, 6), sq(7, 6)
	H1, H2, H3, H4, H5, H6, H7, H8 = sq(0, 7), sq(1, 7), sq(2, 7), sq(3, 7), sq(4, 7), sq(5, 7), sq(6, 7), sq(7, 7)
)

func sq(row, col int8) Position {
	return Position{row: row, col: col}
}

// NewPosition builds a coordinate; off-board values are allowed and report OffBoard.
func NewPosition(row, col int) Position {
	return Position{row: clamp8(row), col: clamp8(col)}
}

// clamp8 keeps far off-board values off-board without int8 wraparound
func clamp8(v int) int8 {
	if v < -64 {
		return -64
	}
	if v > 64 {
		return 64
	}
	return int8(v)
}

// ParsePosition reads algebraic notation such as "e4"
func ParsePosition(text string) (Position, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q: expected a file and a rank like \"e4\"", ErrInvalidPosition, text)
	}
	if s[0] < 'a' || s[0] > 'h' {
		return Position{}, fmt.Errorf("%w: %q: file must be a-h", ErrInvalidPosition, text)
	}
	if s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q: rank must be 1-8", ErrInvalidPosition, text)
	}
	return NewPosition(int(s[1]-'1'), int(s[0]-'a')), nil
}

// KingPosition is the starting square of a color's king
func KingPosition(c Color) Position {
	return NewPosition(c.backRow(), 4)
}

// QueenPosition is the starting square of a color's queen
func QueenPosition(c Color) Position {
	return NewPosition(c.backRow(), 3)
}

func (p Position) Row() int { return int(p.row) }
func (p Position) Col() int { return int(p.col) }

func (p Position) OnBoard() bool {
	return p.row >= 0 && p.row < 8 && p.col >= 0 && p.col < 8
}

func (p Position) OffBoard() bool {
	return !p.OnBoard()
}

func (p Position) index() int {
	return int(p.row)*8 + int(p.col)
}

func (p Position) add(dRow, dCol int) Position {
	return NewPosition(int(p.row)+dRow, int(p.col)+dCol)
}

func (p Position) IsDiagonalTo(o Position) bool {
	return p != o && abs(p.Row()-o.Row()) == abs(p.Col()-o.Col())
}

func (p Position) IsOrthogonalTo(o Position) bool {
	return p != o && (p.row == o.row || p.col == o.col)
}

func (p Position) IsAdjacentTo(o Position) bool {
	return p != o && abs(p.Row()-o.Row()) <= 1 && abs(p.Col()-o.Col()) <= 1
}

func (p Position) IsKnightMove(o Position) bool {
	dr, dc := abs(p.Row()-o.Row()), abs(p.Col()-o.Col())
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func (p Position) IsBelow(o Position) bool   { return p.row < o.row }
func (p Position) IsAbove(o Position) bool   { return p.row > o.row }
func (p Position) IsLeftOf(o Position) bool  { return p.col < o.col }
func (p Position) IsRightOf(o Position) bool { return p.col > o.col }

func (p Position) NextBelow() Position { return p.add(-1, 0) }
func (p Position) NextAbove() Position { return p.add(1, 0) }
func (p Position) NextLeft() Position  { return p.add(0, -1) }
func (p Position) NextRight() Position { return p.add(0, 1) }

// PawnUp steps one row toward the opponent of c
func (p Position) PawnUp(c Color) Position {
	return p.add(c.forward(), 0)
}

// PawnBack steps one row toward c's own back row
func (p Position) PawnBack(c Color) Position {
	return p.add(-c.forward(), 0)
}

// IsStartingPawn reports whether p is on c's pawn row
func (p Position) IsStartingPawn(c Color) bool {
	return p.OnBoard() && p.Row() == c.backRow()+c.forward()
}

func (p Position) IsKingsideRook() bool {
	return (p.row == 0 || p.row == 7) && p.col == 7
}

func (p Position) IsQueensideRook() bool {
	return (p.row == 0 || p.row == 7) && p.col == 0
}

// DiagonalsTo lists the squares stepped through from p to o, including o.
func (p Position) DiagonalsTo(o Position) []Position {
	if !p.IsDiagonalTo(o) {
		return nil
	}
	return p.ray(o)
}

// OrthogonalsTo lists the squares stepped through from p to o, including o.
func (p Position) OrthogonalsTo(o Position) []Position {
	if !p.IsOrthogonalTo(o) {
		return nil
	}
	return p.ray(o)
}

func (p Position) ray(o Position) []Position {
	dr, dc := sign(o.Row()-p.Row()), sign(o.Col()-p.Col())
	steps := max(abs(o.Row()-p.Row()), abs(o.Col()-p.Col()))
	out := make([]Position, 0, steps)
	cur := p
	for i := 0; i < steps; i++ {
		cur = cur.add(dr, dc)
		out = append(out, cur)
	}
	return out
}

// Compare orders by row, then column
func (p Position) Compare(o Position) int {
	if c := cmpInt(p.Row(), o.Row()); c != 0 {
		return c
	}
	return cmpInt(p.Col(), o.Col())
}

func (p Position) String() string {
	if p.OffBoard() {
		return fmt.Sprintf("(%d, %d)", p.row, p.col)
	}
	return fmt.Sprintf("%c%c", rune('a'+int(p.col)), rune('1'+int(p.row)))
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{row: %d, col: %d}", p.row, p.col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
