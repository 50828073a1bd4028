// FILE: internal/binding/result.go
package binding

import "silverpoint/internal/engine"

// GameResult has no constructors; values only come out of Board:play_move.
var resultClass = newClass[engine.GameResult]("GameResult")

func resultEntries() []Entry {
	rc := resultClass
	return []Entry{
		predicate(rc, "is_continuing", engine.GameResult.IsContinuing),
		predicate(rc, "is_victory", engine.GameResult.IsVictory),
		predicate(rc, "is_stalemate", engine.GameResult.IsStalemate),
		predicate(rc, "is_illegal_move", engine.GameResult.IsIllegalMove),
		method(rc.name, "next_board", 0, func(f *frame) int {
			b, ok := rc.Unwrap(f.l, 1).NextBoard()
			boardClass.WrapOptional(f.l, b, ok)
			return 1
		}),
		method(rc.name, "winning_color", 0, func(f *frame) int {
			c, ok := rc.Unwrap(f.l, 1).Winner()
			colorClass.WrapOptional(f.l, c, ok)
			return 1
		}),
		method(rc.name, "illegal_move", 0, func(f *frame) int {
			m, ok := rc.Unwrap(f.l, 1).IllegalMove()
			moveClass.WrapOptional(f.l, m, ok)
			return 1
		}),
	}
}
