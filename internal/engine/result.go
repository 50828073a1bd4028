// FILE: internal/engine/result.go
package engine

import "fmt"

type ResultKind uint8

const (
	ResultContinuing ResultKind = iota
	ResultVictory
	ResultStalemate
	ResultIllegalMove
)

// GameResult is the outcome of playing a move. Only the payload matching
// the kind is set; the rest stay zero so results compare with ==.
type GameResult struct {
	kind   ResultKind
	next   Board
	winner Color
	move   Move
}

func continuing(next Board) GameResult {
	return GameResult{kind: ResultContinuing, next: next}
}

func victory(c Color) GameResult {
	return GameResult{kind: ResultVictory, winner: c}
}

func stalemate() GameResult {
	return GameResult{kind: ResultStalemate}
}

func illegalMove(m Move) GameResult {
	return GameResult{kind: ResultIllegalMove, move: m}
}

func (r GameResult) Kind() ResultKind    { return r.kind }
func (r GameResult) IsContinuing() bool  { return r.kind == ResultContinuing }
func (r GameResult) IsVictory() bool     { return r.kind == ResultVictory }
func (r GameResult) IsStalemate() bool   { return r.kind == ResultStalemate }
func (r GameResult) IsIllegalMove() bool { return r.kind == ResultIllegalMove }

func (r GameResult) NextBoard() (Board, bool) {
	return r.next, r.kind == ResultContinuing
}

func (r GameResult) Winner() (Color, bool) {
	return r.winner, r.kind == ResultVictory
}

func (r GameResult) IllegalMove() (Move, bool) {
	return r.move, r.kind == ResultIllegalMove
}

func (r GameResult) String() string {
	switch r.kind {
	case ResultContinuing:
		return "Continuing(" + r.next.turn.String() + " to move)"
	case ResultVictory:
		return "Victory(" + r.winner.String() + ")"
	case ResultStalemate:
		return "Stalemate"
	default:
		return "IllegalMove(" + r.move.String() + ")"
	}
}

func (r GameResult) GoString() string {
	switch r.kind {
	case ResultContinuing:
		return fmt.Sprintf("GameResult.Continuing(%#v)", r.next)
	case ResultVictory:
		return fmt.Sprintf("GameResult.Victory(%#v)", r.winner)
	case ResultStalemate:
		return "GameResult.Stalemate"
	default:
		return fmt.Sprintf("GameResult.IllegalMove(%#v)", r.move)
	}
}

func (r GameResult) Compare(o GameResult) int {
	if c := cmpInt(int(r.kind), int(o.kind)); c != 0 {
		return c
	}
	switch r.kind {
	case ResultContinuing:
		return r.next.Compare(o.next)
	case ResultVictory:
		return r.winner.Compare(o.winner)
	case ResultIllegalMove:
		return r.move.Compare(o.move)
	}
	return 0
}
