// FILE: internal/binding/marshal_test.go
package binding

import (
	"testing"

	"github.com/Shopify/go-lua"

	"silverpoint/internal/engine"
)

func roundTrip[T Value[T]](t *testing.T, l *lua.State, c *Class[T], values ...T) {
	t.Helper()
	for _, v := range values {
		for i := 0; i < 3; i++ {
			c.Wrap(l, v)
			got := c.Unwrap(l, -1)
			l.Pop(1)
			if got != v {
				t.Fatalf("%s: round trip %d of %#v gave %#v", c.Name(), i, v, got)
			}
			v = got
		}
	}
}

func TestRoundTrip(t *testing.T) {
	l := newState(t, nil)
	board := engine.Default()
	next, _ := board.PlayMove(engine.PieceMove(engine.E2, engine.E4)).NextBoard()
	piece, _ := board.Piece(engine.G1)

	roundTrip(t, l, colorClass, engine.White, engine.Black)
	roundTrip(t, l, positionClass, engine.A1, engine.E4, engine.H8, engine.A1.NextBelow())
	roundTrip(t, l, pieceClass, piece, piece.MoveTo(engine.F3))
	roundTrip(t, l, squareClass, engine.EmptySquare, board.Square(engine.E1))
	roundTrip(t, l, moveClass, engine.Resign(), engine.KingSideCastle(), engine.PieceMove(engine.E2, engine.E4))
	roundTrip(t, l, boardClass, board, next, engine.Horde(), engine.Empty())
	roundTrip(t, l, resultClass,
		board.PlayMove(engine.Resign()),
		board.PlayMove(engine.PieceMove(engine.E2, engine.E5)),
		board.PlayMove(engine.PieceMove(engine.E2, engine.E4)))
}

func TestProbeDoesNotRaise(t *testing.T) {
	l := newState(t, nil)
	colorClass.Wrap(l, engine.White)
	if _, ok := positionClass.Test(l, -1); ok {
		t.Fatalf("a Color is not a Position")
	}
	if c, ok := colorClass.Test(l, -1); !ok || c != engine.White {
		t.Fatalf("Test(Color) = %v, %v", c, ok)
	}
	l.Pop(1)
}

func TestEqualityFollowsPayload(t *testing.T) {
	l := newState(t, nil)
	got := eval(t, l, prelude+`
assert(Position.pgn("e4") == Position.E4)
assert(Position.new(3, 4) == Position.E4)
assert(Position.E4 ~= Position.D4)
assert(Board.new() == Board.new())
assert(Board.new() ~= Board.new():change_turn())
assert(Board.new():change_turn():change_turn() == Board.new())
assert(Move.parse("e2 to e4") == Move.new_piece(Position.E2, Position.E4))
assert(Move.new_resign() == Move.parse("resign"))
assert(Color.White:other() == Color.Black)
assert(Board.new():square(Position.E4) == Square.Empty)
assert(Board.new():piece(Position.E2) == Board.new():piece(Position.E2))
assert(Position.A1 < Position.A2 and Position.A2 <= Position.A2)
assert(not (Position.H8 < Position.A1))
return "ok"
`)
	if got[0] != "ok" {
		t.Fatalf("got %v", got)
	}
}

func TestDisplayForms(t *testing.T) {
	l := newState(t, nil)
	tests := []struct {
		expr, want string
	}{
		{`tostring(Position.E4)`, "e4"},
		{`Position.E4:to_string()`, "e4"},
		{`Position.E4:inspect()`, "Position{row: 3, col: 4}"},
		{`tostring(Color.White)`, "White"},
		{`Color.Black:inspect()`, "Color(Black)"},
		{`tostring(Move.parse("e2e4"))`, "e2 to e4"},
		{`tostring(Move.new_kingside_castle())`, "O-O"},
		{`tostring(Square.Empty)`, "Empty"},
		{`Board.new():fen()`, engine.StartingFEN},
		{`tostring(Board.new())`, engine.Default().String()},
		{`Board.new():piece(Position.E1):name()`, "king"},
	}
	for _, tt := range tests {
		got := eval(t, l, prelude+"return "+tt.expr)
		if got[0] != tt.want {
			t.Errorf("%s = %q, want %q", tt.expr, got[0], tt.want)
		}
	}
}

func TestCompositeMarshalling(t *testing.T) {
	l := newState(t, nil)
	got := eval(t, l, prelude+`
local b = Board.new()
assert(b:piece(Position.E4) == nil)
assert(b:en_passant() == nil)
assert(Board.horde():king_pos(Color.White) == nil)
assert(b:king_pos(Color.Black) == Position.E8)

local moves = b:legal_moves()
assert(#moves == 20 and moves[1] ~= nil and moves[0] == nil)

local from, to = Move.parse("e2e4"):piece_positions()
assert(from == Position.E2 and to == Position.E4)
assert(Move.new_resign():piece_positions() == nil)

local ray = Position.A1:diagonals_to(Position.D4)
assert(#ray == 3 and ray[1] == Position.B2 and ray[3] == Position.D4)
assert(#Position.A1:orthogonals_to(Position.B2) == 0)

local m1, n1, s1 = b:best_next_move(1)
local m2, n2, s2 = b:best_next_move(1)
assert(m1 == m2 and n1 == n2 and s1 == s2)

local score, nodes = b:minimax(0, -1000000, 1000000, true, Color.White, 5)
assert(nodes == 6 and score == b:value_for(Color.White))

local piece = b:piece(Position.G1)
assert(piece:is_knight() and piece:color() == Color.White and piece:pos() == Position.G1)
assert(piece:move(Position.F3):pos() == Position.F3 and piece:pos() == Position.G1)
assert(piece:with_color(Color.Black):color() == Color.Black)
assert(piece:material_value() == 3)
return tostring(n1)
`)
	if got[0] != "420" {
		t.Fatalf("depth 1 search visited %v nodes", got)
	}
}

func TestGameFlow(t *testing.T) {
	l := newState(t, nil)
	got := eval(t, l, prelude+`
local b = Board.new()
local snapshot = b
b:change_turn()
b:play_move(Move.parse("e2e4"))
b:remove_all(Color.White)
b:set_turn(Color.Black)
assert(b == snapshot and b == Board.new())

local illegal = Move.new_piece(Position.E2, Position.E5)
local r = b:play_move(illegal)
assert(r:is_illegal_move() and r:illegal_move() == illegal)
assert(r:next_board() == nil and r:winning_color() == nil)

for _, text in ipairs({"f2f3", "e7e5", "g2g4"}) do
  r = b:play_move(Move.parse(text))
  assert(r:is_continuing(), text)
  b = r:next_board()
end
r = b:play_move(Move.parse("d8h4"))
assert(r:is_victory())
return tostring(r:winning_color())
`)
	if got[0] != "Black" {
		t.Fatalf("fool's mate winner = %v", got)
	}
}
