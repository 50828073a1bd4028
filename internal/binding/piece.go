// FILE: internal/binding/piece.go
package binding

import "silverpoint/internal/engine"

var pieceClass = newClass[engine.Piece]("Piece")

func pieceEntries() []Entry {
	pc := pieceClass
	return []Entry{
		method(pc.name, "name", 0, func(f *frame) int {
			f.l.PushString(pc.Unwrap(f.l, 1).Name())
			return 1
		}),
		method(pc.name, "material_value", 0, func(f *frame) int {
			f.l.PushInteger(pc.Unwrap(f.l, 1).MaterialValue())
			return 1
		}),
		method(pc.name, "with_color", 1, func(f *frame) int {
			pc.Wrap(f.l, pc.Unwrap(f.l, 1).WithColor(colorClass.Unwrap(f.l, 2)))
			return 1
		}),
		method(pc.name, "color", 0, func(f *frame) int {
			colorClass.Wrap(f.l, pc.Unwrap(f.l, 1).Color())
			return 1
		}),
		method(pc.name, "pos", 0, func(f *frame) int {
			positionClass.Wrap(f.l, pc.Unwrap(f.l, 1).Pos())
			return 1
		}),
		predicate(pc, "is_king", engine.Piece.IsKing),
		predicate(pc, "is_queen", engine.Piece.IsQueen),
		predicate(pc, "is_rook", engine.Piece.IsRook),
		predicate(pc, "is_bishop", engine.Piece.IsBishop),
		predicate(pc, "is_knight", engine.Piece.IsKnight),
		predicate(pc, "is_pawn", engine.Piece.IsPawn),
		predicate(pc, "is_starting_pawn", engine.Piece.IsStartingPawn),
		predicate(pc, "is_queenside_rook", engine.Piece.IsQueensideRook),
		predicate(pc, "is_kingside_rook", engine.Piece.IsKingsideRook),
		method(pc.name, "move", 1, func(f *frame) int {
			pc.Wrap(f.l, pc.Unwrap(f.l, 1).MoveTo(positionClass.Unwrap(f.l, 2)))
			return 1
		}),
	}
}
