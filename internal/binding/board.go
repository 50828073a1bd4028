// FILE: internal/binding/board.go
package binding

import (
	"github.com/Shopify/go-lua"

	"silverpoint/internal/engine"
)

var boardClass = newClass[engine.Board]("Board")

func boardEntries() []Entry {
	bc := boardClass
	self := func(f *frame) engine.Board { return bc.Unwrap(f.l, 1) }
	color := func(f *frame, index int) engine.Color { return colorClass.Unwrap(f.l, index) }
	pos := func(f *frame, index int) engine.Position { return positionClass.Unwrap(f.l, index) }

	fixed := func(name string, b func() engine.Board) Entry {
		return constructor(bc.name, name, 0, func(f *frame) int {
			bc.Wrap(f.l, b())
			return 1
		})
	}
	// byColor covers the board transforms taking a color
	byColor := func(name string, t func(engine.Board, engine.Color) engine.Board) Entry {
		return method(bc.name, name, 1, func(f *frame) int {
			bc.Wrap(f.l, t(self(f), color(f, 2)))
			return 1
		})
	}
	// colorTest covers the predicates taking a color
	colorTest := func(name string, p func(engine.Board, engine.Color) bool) Entry {
		return method(bc.name, name, 1, func(f *frame) int {
			f.l.PushBoolean(p(self(f), color(f, 2)))
			return 1
		})
	}
	slowColorTest := func(name string, p func(engine.Board, engine.Color) bool) Entry {
		return slow(method(bc.name, name, 1, func(f *frame) int {
			b, c := self(f), color(f, 2)
			f.l.PushBoolean(blocking(f, func() bool { return p(b, c) }))
			return 1
		}))
	}
	posTest := func(name string, p func(engine.Board, engine.Position) bool) Entry {
		return method(bc.name, name, 1, func(f *frame) int {
			f.l.PushBoolean(p(self(f), pos(f, 2)))
			return 1
		})
	}
	allyTest := func(name string, p func(engine.Board, engine.Position, engine.Color) bool) Entry {
		return method(bc.name, name, 2, func(f *frame) int {
			f.l.PushBoolean(p(self(f), pos(f, 2), color(f, 3)))
			return 1
		})
	}
	slowTest := func(name string, p func(engine.Board) bool) Entry {
		return slow(method(bc.name, name, 0, func(f *frame) int {
			b := self(f)
			f.l.PushBoolean(blocking(f, func() bool { return p(b) }))
			return 1
		}))
	}
	search := func(name string, s func(engine.Board, int) (engine.Move, uint64, float64)) Entry {
		return slow(method(bc.name, name, 1, func(f *frame) int {
			b, depth := self(f), f.integer(2)
			type found struct {
				move  engine.Move
				nodes uint64
				score float64
			}
			r := blocking(f, func() found {
				m, n, v := s(b, depth)
				return found{m, n, v}
			})
			moveClass.Wrap(f.l, r.move)
			f.l.PushInteger(int(r.nodes))
			f.l.PushNumber(r.score)
			return 3
		}))
	}

	return []Entry{
		fixed("new", engine.Default),
		fixed("horde", engine.Horde),
		fixed("empty", engine.Empty),
		constructor(bc.name, "from_fen", 1, func(f *frame) int {
			b, err := engine.FromFEN(f.text(1))
			bc.Wrap(f.l, check(f.l, b, err))
			return 1
		}),

		slow(method(bc.name, "rating_bar", 1, func(f *frame) int {
			b, n := self(f), f.integer(2)
			f.l.PushString(blocking(f, func() string { return b.RatingBar(n) }))
			return 1
		})),
		method(bc.name, "turn_color", 0, func(f *frame) int {
			colorClass.Wrap(f.l, self(f).TurnColor())
			return 1
		}),
		method(bc.name, "current_player_color", 0, func(f *frame) int {
			colorClass.Wrap(f.l, self(f).CurrentPlayerColor())
			return 1
		}),
		method(bc.name, "en_passant", 0, func(f *frame) int {
			p, ok := self(f).EnPassant()
			positionClass.WrapOptional(f.l, p, ok)
			return 1
		}),
		byColor("remove_all", engine.Board.RemoveAll),
		byColor("queen_all", engine.Board.QueenAll),
		byColor("set_turn", engine.Board.SetTurn),
		method(bc.name, "change_turn", 0, func(f *frame) int {
			bc.Wrap(f.l, self(f).ChangeTurn())
			return 1
		}),
		slow(method(bc.name, "material_advantage", 1, func(f *frame) int {
			b, c := self(f), color(f, 2)
			f.l.PushInteger(blocking(f, func() int { return b.MaterialAdvantage(c) }))
			return 1
		})),
		method(bc.name, "piece", 1, func(f *frame) int {
			p, ok := self(f).Piece(pos(f, 2))
			pieceClass.WrapOptional(f.l, p, ok)
			return 1
		}),
		method(bc.name, "square", 1, func(f *frame) int {
			squareClass.Wrap(f.l, self(f).Square(pos(f, 2)))
			return 1
		}),
		allyTest("has_ally_piece", engine.Board.HasAllyPiece),
		allyTest("has_enemy_piece", engine.Board.HasEnemyPiece),
		posTest("has_piece", engine.Board.HasPiece),
		posTest("has_no_piece", engine.Board.HasNoPiece),
		method(bc.name, "king_pos", 1, func(f *frame) int {
			p, ok := self(f).KingPosition(color(f, 2))
			positionClass.WrapOptional(f.l, p, ok)
			return 1
		}),
		slow(method(bc.name, "is_threatened", 2, func(f *frame) int {
			b, p, c := self(f), pos(f, 2), color(f, 3)
			f.l.PushBoolean(blocking(f, func() bool { return b.IsThreatened(p, c) }))
			return 1
		})),
		slowColorTest("is_in_check", engine.Board.IsInCheck),
		colorTest("can_kingside_castle", engine.Board.CanKingsideCastle),
		colorTest("can_queenside_castle", engine.Board.CanQueensideCastle),
		slowColorTest("has_sufficient_material", engine.Board.HasSufficientMaterial),
		slowColorTest("has_insufficient_material", engine.Board.HasInsufficientMaterial),
		slowTest("is_stalemate", engine.Board.IsStalemate),
		slowTest("is_checkmate", engine.Board.IsCheckmate),

		slow(method(bc.name, "play_move", 1, func(f *frame) int {
			b, m := self(f), moveClass.Unwrap(f.l, 2)
			resultClass.Wrap(f.l, blocking(f, func() engine.GameResult { return b.PlayMove(m) }))
			return 1
		})),
		method(bc.name, "apply_eval_move", 1, func(f *frame) int {
			bc.Wrap(f.l, self(f).ApplyEvalMove(moveClass.Unwrap(f.l, 2)))
			return 1
		}),
		slow(method(bc.name, "value_for", 1, func(f *frame) int {
			b, c := self(f), color(f, 2)
			f.l.PushNumber(blocking(f, func() float64 { return b.ValueFor(c) }))
			return 1
		})),
		slow(method(bc.name, "legal_moves", 0, func(f *frame) int {
			b := self(f)
			moveClass.WrapSlice(f.l, blocking(f, b.LegalMoves))
			return 1
		})),
		search("best_next_move", engine.Board.BestNextMove),
		search("worst_next_move", engine.Board.WorstNextMove),
		slow(method(bc.name, "minimax", 6, func(f *frame) int {
			b := self(f)
			depth, alpha, beta := f.integer(2), f.number(3), f.number(4)
			maximizing, c := f.boolean(5), color(f, 6)
			nodes := uint64(max(f.integer(7), 0))
			score := blocking(f, func() float64 {
				return b.Minimax(depth, alpha, beta, maximizing, c, &nodes)
			})
			f.l.PushNumber(score)
			f.l.PushInteger(int(nodes))
			return 2
		})),
		method(bc.name, "fen", 0, func(f *frame) int {
			f.l.PushString(self(f).FEN())
			return 1
		}),
	}
}

// ToBoard reads a wrapped Board at index without raising
func ToBoard(l *lua.State, index int) (engine.Board, bool) {
	return boardClass.Test(l, index)
}
