// FILE: internal/binding/move.go
package binding

import "silverpoint/internal/engine"

var moveClass = newClass[engine.Move]("Move")

func moveEntries() []Entry {
	mv := moveClass
	fixed := func(name string, m engine.Move) Entry {
		return constructor(mv.name, name, 0, func(f *frame) int {
			mv.Wrap(f.l, m)
			return 1
		})
	}
	return []Entry{
		fixed("new_queenside_castle", engine.QueenSideCastle()),
		fixed("new_kingside_castle", engine.KingSideCastle()),
		fixed("new_resign", engine.Resign()),
		constructor(mv.name, "new_piece", 2, func(f *frame) int {
			mv.Wrap(f.l, engine.PieceMove(positionClass.Unwrap(f.l, 1), positionClass.Unwrap(f.l, 2)))
			return 1
		}),
		constructor(mv.name, "parse", 1, func(f *frame) int {
			m, err := engine.ParseMove(f.text(1))
			mv.Wrap(f.l, check(f.l, m, err))
			return 1
		}),

		predicate(mv, "is_queenside_castle", engine.Move.IsQueenSideCastle),
		predicate(mv, "is_kingside_castle", engine.Move.IsKingSideCastle),
		predicate(mv, "is_piece", engine.Move.IsPiece),
		predicate(mv, "is_resign", engine.Move.IsResign),
		method(mv.name, "piece_positions", 0, func(f *frame) int {
			from, to, ok := mv.Unwrap(f.l, 1).Positions()
			if !ok {
				f.l.PushNil()
				return 1
			}
			positionClass.Wrap(f.l, from)
			positionClass.Wrap(f.l, to)
			return 2
		}),
	}
}
