// FILE: internal/binding/position.go
package binding

import (
	"silverpoint/internal/engine"
)

var positionClass = newClass[engine.Position]("Position")

func positionEntries() []Entry {
	pos := positionClass
	self := func(f *frame) engine.Position { return pos.Unwrap(f.l, 1) }
	ray := func(name string, r func(engine.Position, engine.Position) []engine.Position) Entry {
		return method(pos.name, name, 1, func(f *frame) int {
			pos.WrapSlice(f.l, r(self(f), pos.Unwrap(f.l, 2)))
			return 1
		})
	}
	byColor := func(name string, step func(engine.Position, engine.Color) engine.Position) Entry {
		return method(pos.name, name, 1, func(f *frame) int {
			pos.Wrap(f.l, step(self(f), colorClass.Unwrap(f.l, 2)))
			return 1
		})
	}

	entries := []Entry{
		constructor(pos.name, "new", 2, func(f *frame) int {
			pos.Wrap(f.l, engine.NewPosition(f.integer(1), f.integer(2)))
			return 1
		}),
		constructor(pos.name, "pgn", 1, func(f *frame) int {
			p, err := engine.ParsePosition(f.text(1))
			pos.Wrap(f.l, check(f.l, p, err))
			return 1
		}),
		constructor(pos.name, "king_pos", 1, func(f *frame) int {
			pos.Wrap(f.l, engine.KingPosition(colorClass.Unwrap(f.l, 1)))
			return 1
		}),
		constructor(pos.name, "queen_pos", 1, func(f *frame) int {
			pos.Wrap(f.l, engine.QueenPosition(colorClass.Unwrap(f.l, 1)))
			return 1
		}),

		predicate(pos, "is_on_board", engine.Position.OnBoard),
		predicate(pos, "is_off_board", engine.Position.OffBoard),
		method(pos.name, "row", 0, func(f *frame) int {
			f.l.PushInteger(self(f).Row())
			return 1
		}),
		method(pos.name, "col", 0, func(f *frame) int {
			f.l.PushInteger(self(f).Col())
			return 1
		}),

		relation(pos, "is_diagonal_to", engine.Position.IsDiagonalTo),
		relation(pos, "is_orthogonal_to", engine.Position.IsOrthogonalTo),
		relation(pos, "is_adjacent_to", engine.Position.IsAdjacentTo),
		relation(pos, "is_below", engine.Position.IsBelow),
		relation(pos, "is_above", engine.Position.IsAbove),
		relation(pos, "is_left_of", engine.Position.IsLeftOf),
		relation(pos, "is_right_of", engine.Position.IsRightOf),
		relation(pos, "is_knight_move", engine.Position.IsKnightMove),

		transform(pos, "next_below", engine.Position.NextBelow),
		transform(pos, "next_above", engine.Position.NextAbove),
		transform(pos, "next_left", engine.Position.NextLeft),
		transform(pos, "next_right", engine.Position.NextRight),
		byColor("pawn_up", engine.Position.PawnUp),
		byColor("pawn_back", engine.Position.PawnBack),

		method(pos.name, "is_starting_pawn", 1, func(f *frame) int {
			f.l.PushBoolean(self(f).IsStartingPawn(colorClass.Unwrap(f.l, 2)))
			return 1
		}),
		predicate(pos, "is_kingside_rook", engine.Position.IsKingsideRook),
		predicate(pos, "is_queenside_rook", engine.Position.IsQueensideRook),

		ray("diagonals_to", engine.Position.DiagonalsTo),
		ray("orthogonals_to", engine.Position.OrthogonalsTo),
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := engine.NewPosition(row, col)
			entries = append(entries, constant(pos, squareName(p), p))
		}
	}
	return entries
}

// squareName is the constant name of an on-board position, "A1" to "H8"
func squareName(p engine.Position) string {
	return string([]byte{byte('A' + p.Col()), byte('1' + p.Row())})
}
