// FILE: internal/engine/board.go
package engine

import (
	"fmt"
	"strings"
)

// CastlingRights records which castles a color may still perform
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Board is a complete chess position. It is a plain value: every method
// that changes the position returns a successor and leaves the receiver
// untouched, and two boards are equal exactly when == holds.
type Board struct {
	squares      [64]Square
	enPassant    Position
	hasEnPassant bool
	castling     [2]CastlingRights
	turn         Color
}

// Default is the standard starting position
func Default() Board {
	return startingBoard
}

// Empty has no pieces, no castling rights and White to move
func Empty() Board {
	return Board{turn: White}
}

// Horde is the horde variant: 36 white pawns against a full black army
func Horde() Board {
	return hordeBoard
}

var (
	startingBoard = mustFEN(StartingFEN)
	hordeBoard    = mustFEN(HordeFEN)
)

func mustFEN(fen string) Board {
	b, err := FromFEN(fen)
	if err != nil {
		panic(fmt.Sprintf("engine: bad built-in FEN %q: %v", fen, err))
	}
	return b
}

func (b Board) TurnColor() Color          { return b.turn }
func (b Board) CurrentPlayerColor() Color { return b.turn }

func (b Board) EnPassant() (Position, bool) {
	return b.enPassant, b.hasEnPassant
}

func (b Board) CastlingRights(c Color) CastlingRights {
	return b.castling[c]
}

// Square returns the square at pos; off-board positions read as empty
func (b Board) Square(pos Position) Square {
	if pos.OffBoard() {
		return EmptySquare
	}
	return b.squares[pos.index()]
}

func (b Board) Piece(pos Position) (Piece, bool) {
	return b.Square(pos).Piece()
}

func (b Board) HasPiece(pos Position) bool {
	return !b.Square(pos).IsEmpty()
}

func (b Board) HasNoPiece(pos Position) bool {
	return pos.OnBoard() && b.Square(pos).IsEmpty()
}

func (b Board) HasAllyPiece(pos Position, ally Color) bool {
	p, ok := b.Piece(pos)
	return ok && p.color == ally
}

func (b Board) HasEnemyPiece(pos Position, ally Color) bool {
	p, ok := b.Piece(pos)
	return ok && p.color != ally
}

// KingPosition finds c's king; variants such as horde may have none
func (b Board) KingPosition(c Color) (Position, bool) {
	for _, s := range b.squares {
		if p, ok := s.Piece(); ok && p.kind == King && p.color == c {
			return p.pos, true
		}
	}
	return Position{}, false
}

func (b Board) SetTurn(c Color) Board {
	b.turn = c
	return b
}

func (b Board) ChangeTurn() Board {
	b.turn = b.turn.Other()
	return b
}

// RemoveAll clears every piece of color c, king included
func (b Board) RemoveAll(c Color) Board {
	for i, s := range b.squares {
		if p, ok := s.Piece(); ok && p.color == c {
			b.squares[i] = EmptySquare
		}
	}
	return b
}

// QueenAll turns every non-king piece of color c into a queen
func (b Board) QueenAll(c Color) Board {
	for i, s := range b.squares {
		if p, ok := s.Piece(); ok && p.color == c && p.kind != King {
			p.kind = Queen
			b.squares[i] = Occupied(p)
		}
	}
	return b
}

// put is the only writer of squares; it keeps the stored piece's position in sync
func (b *Board) put(pos Position, p Piece) {
	b.squares[pos.index()] = Occupied(p.MoveTo(pos))
}

func (b *Board) clear(pos Position) {
	b.squares[pos.index()] = EmptySquare
}

func (b *Board) setEnPassant(pos Position, ok bool) {
	if !ok {
		pos = Position{}
	}
	b.enPassant, b.hasEnPassant = pos, ok
}

// Compare orders boards square by square, then by the remaining state
func (b Board) Compare(o Board) int {
	for i := range b.squares {
		if c := b.squares[i].Compare(o.squares[i]); c != 0 {
			return c
		}
	}
	if c := cmpBool(b.hasEnPassant, o.hasEnPassant); c != 0 {
		return c
	}
	if c := b.enPassant.Compare(o.enPassant); c != 0 {
		return c
	}
	for i := range b.castling {
		if c := cmpBool(b.castling[i].Kingside, o.castling[i].Kingside); c != 0 {
			return c
		}
		if c := cmpBool(b.castling[i].Queenside, o.castling[i].Queenside); c != 0 {
			return c
		}
	}
	return b.turn.Compare(o.turn)
}

// String renders the board as an ASCII grid, rank 8 at the top
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for row := 7; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < 8; col++ {
			p, ok := b.Piece(NewPosition(row, col))
			if !ok {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", p.fenLetter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", row+1))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}

func (b Board) GoString() string {
	return fmt.Sprintf("Board{fen: %q}", b.FEN())
}
