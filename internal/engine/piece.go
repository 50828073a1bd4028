// FILE: internal/engine/piece.go
package engine

import "fmt"

type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"king", "queen", "rook", "bishop", "knight", "pawn"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Piece is a kind and color standing on a position. Pieces are values:
// relocating one produces a new Piece.
type Piece struct {
	kind  Kind
	color Color
	pos   Position
}

func NewPiece(kind Kind, color Color, pos Position) Piece {
	return Piece{kind: kind, color: color, pos: pos}
}

func (p Piece) Kind() Kind     { return p.kind }
func (p Piece) Name() string   { return p.kind.String() }
func (p Piece) Color() Color   { return p.color }
func (p Piece) Pos() Position  { return p.pos }
func (p Piece) IsKing() bool   { return p.kind == King }
func (p Piece) IsQueen() bool  { return p.kind == Queen }
func (p Piece) IsRook() bool   { return p.kind == Rook }
func (p Piece) IsBishop() bool { return p.kind == Bishop }
func (p Piece) IsKnight() bool { return p.kind == Knight }
func (p Piece) IsPawn() bool   { return p.kind == Pawn }
func (p Piece) WithColor(c Color) Piece {
	p.color = c
	return p
}

// MoveTo returns the same piece standing on pos
func (p Piece) MoveTo(pos Position) Piece {
	p.pos = pos
	return p
}

func (p Piece) IsStartingPawn() bool {
	return p.kind == Pawn && p.pos.IsStartingPawn(p.color)
}

func (p Piece) IsQueensideRook() bool {
	return p.kind == Rook && p.pos.IsQueensideRook()
}

func (p Piece) IsKingsideRook() bool {
	return p.kind == Rook && p.pos.IsKingsideRook()
}

// MaterialValue is the classical piece value; the king is effectively priceless.
func (p Piece) MaterialValue() int {
	switch p.kind {
	case King:
		return 99999
	case Queen:
		return 9
	case Rook:
		return 5
	case Bishop, Knight:
		return 3
	default:
		return 1
	}
}

// WeightedValue is material plus the piece-square bonus for the piece's square
func (p Piece) WeightedValue() float64 {
	row := 7 - p.pos.Row()
	if p.color == Black {
		row = p.pos.Row()
	}
	return squareWeights[p.kind][row][p.pos.Col()] + float64(p.MaterialValue()*10)
}

// fenLetter is the FEN symbol, uppercase for white
func (p Piece) fenLetter() byte {
	letter := "kqrbnp"[p.kind]
	if p.color == White {
		letter -= 'a' - 'A'
	}
	return letter
}

var glyphs = [2][6]string{
	{"♔", "♕", "♖", "♗", "♘", "♙"},
	{"♚", "♛", "♜", "♝", "♞", "♟"},
}

func (p Piece) String() string {
	return glyphs[p.color][p.kind]
}

func (p Piece) GoString() string {
	return fmt.Sprintf("Piece{kind: %s, color: %s, pos: %s}", p.kind, p.color, p.pos)
}

// Compare orders by kind, color, then position
func (p Piece) Compare(o Piece) int {
	if c := cmpInt(int(p.kind), int(o.kind)); c != 0 {
		return c
	}
	if c := p.color.Compare(o.color); c != 0 {
		return c
	}
	return p.pos.Compare(o.pos)
}
