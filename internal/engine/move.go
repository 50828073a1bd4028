// FILE: internal/engine/move.go
package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

type MoveKind uint8

const (
	MoveQueenSideCastle MoveKind = iota
	MoveKingSideCastle
	MovePiece
	MoveResign
)

// Move is one of: queenside castle, kingside castle, a piece moving
// between two positions, or resignation. Only MovePiece carries positions.
type Move struct {
	kind MoveKind
	from Position
	to   Position
}

func QueenSideCastle() Move { return Move{kind: MoveQueenSideCastle} }
func KingSideCastle() Move  { return Move{kind: MoveKingSideCastle} }
func Resign() Move          { return Move{kind: MoveResign} }

func PieceMove(from, to Position) Move {
	return Move{kind: MovePiece, from: from, to: to}
}

// ParseMove reads "e2e4", "e2 e4", "e2 to e4", "e2-e4", castling in O-O
// or 0-0 notation, and "resign".
func ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "":
		return Move{}, fmt.Errorf("%w: empty input", ErrInvalidMove)
	case "resign", "resigns":
		return Resign(), nil
	case "o-o", "0-0", "castle kingside", "castle king side":
		return KingSideCastle(), nil
	case "o-o-o", "0-0-0", "castle queenside", "castle queen side":
		return QueenSideCastle(), nil
	}

	var from, to string
	if fields := strings.Fields(strings.ReplaceAll(s, " to ", " ")); len(fields) == 2 {
		from, to = fields[0], fields[1]
	} else if parts := strings.Split(s, "-"); len(parts) == 2 {
		from, to = parts[0], parts[1]
	} else if len(s) == 4 {
		from, to = s[:2], s[2:]
	} else {
		return Move{}, fmt.Errorf("%w: %q: expected a move like \"e2e4\", \"O-O\" or \"resign\"", ErrInvalidMove, text)
	}

	fromPos, err := ParsePosition(from)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	toPos, err := ParsePosition(to)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	return PieceMove(fromPos, toPos), nil
}

func (m Move) Kind() MoveKind          { return m.kind }
func (m Move) IsQueenSideCastle() bool { return m.kind == MoveQueenSideCastle }
func (m Move) IsKingSideCastle() bool  { return m.kind == MoveKingSideCastle }
func (m Move) IsPiece() bool           { return m.kind == MovePiece }
func (m Move) IsResign() bool          { return m.kind == MoveResign }

// Positions returns the endpoints of a piece move
func (m Move) Positions() (from, to Position, ok bool) {
	if m.kind != MovePiece {
		return Position{}, Position{}, false
	}
	return m.from, m.to, true
}

func (m Move) String() string {
	switch m.kind {
	case MoveQueenSideCastle:
		return "O-O-O"
	case MoveKingSideCastle:
		return "O-O"
	case MovePiece:
		return m.from.String() + " to " + m.to.String()
	default:
		return "resign"
	}
}

func (m Move) GoString() string {
	switch m.kind {
	case MoveQueenSideCastle:
		return "Move.QueenSideCastle"
	case MoveKingSideCastle:
		return "Move.KingSideCastle"
	case MovePiece:
		return fmt.Sprintf("Move.Piece(%#v, %#v)", m.from, m.to)
	default:
		return "Move.Resign"
	}
}

// Compare orders by variant, then endpoints
func (m Move) Compare(o Move) int {
	if c := cmpInt(int(m.kind), int(o.kind)); c != 0 {
		return c
	}
	if c := m.from.Compare(o.from); c != 0 {
		return c
	}
	return m.to.Compare(o.to)
}
