// FILE: internal/engine/square.go
package engine

// Square is either empty or holds exactly one piece
type Square struct {
	piece    Piece
	occupied bool
}

// EmptySquare is the unoccupied square
var EmptySquare = Square{}

func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

func (s Square) String() string {
	if !s.occupied {
		return "Empty"
	}
	return "Square(" + s.piece.GoString() + ")"
}

func (s Square) GoString() string {
	return s.String()
}

// Compare orders empty squares first
func (s Square) Compare(o Square) int {
	if c := cmpBool(s.occupied, o.occupied); c != 0 || !s.occupied {
		return c
	}
	return s.piece.Compare(o.piece)
}
