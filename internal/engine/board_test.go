// FILE: internal/engine/board_test.go
package engine

import (
	"errors"
	"testing"
)

func mustBoard(t *testing.T, fen string) Board {
	t.Helper()
	b, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return b
}

func mustPlay(t *testing.T, b Board, text string) GameResult {
	t.Helper()
	m, err := ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return b.PlayMove(m)
}

func TestDefaultBoard(t *testing.T) {
	b := Default()
	if b.TurnColor() != White {
		t.Fatalf("white moves first")
	}
	if got := len(b.LegalMoves()); got != 20 {
		t.Fatalf("starting position has %d legal moves, want 20", got)
	}
	if p, ok := b.Piece(E1); !ok || !p.IsKing() || p.Color() != White {
		t.Fatalf("e1 = %v, %v", p, ok)
	}
	if p, ok := b.Piece(D8); !ok || !p.IsQueen() || p.Color() != Black {
		t.Fatalf("d8 = %v, %v", p, ok)
	}
	if !b.HasNoPiece(E4) || !b.HasAllyPiece(A2, White) || !b.HasEnemyPiece(A7, White) {
		t.Fatalf("occupancy predicates wrong")
	}
	if b.Square(E4) != EmptySquare {
		t.Fatalf("e4 should be empty")
	}
	if b.FEN() != StartingFEN {
		t.Fatalf("FEN() = %q", b.FEN())
	}
}

func TestPlayMoveLeavesReceiverUnchanged(t *testing.T) {
	b := Default()
	snapshot := b

	_ = b.PlayMove(PieceMove(E2, E4))
	_ = b.ChangeTurn()
	_ = b.RemoveAll(White)
	_ = b.QueenAll(Black)
	_ = b.SetTurn(Black)

	if b != snapshot {
		t.Fatalf("board was mutated by a functional update")
	}
}

func TestFoolsMate(t *testing.T) {
	b := Default()
	moves := []string{"f2f3", "e7e5", "g2g4"}
	for _, text := range moves {
		r := mustPlay(t, b, text)
		next, ok := r.NextBoard()
		if !ok {
			t.Fatalf("%s: got %v, want continuing", text, r)
		}
		b = next
	}

	r := mustPlay(t, b, "d8h4")
	winner, ok := r.Winner()
	if !r.IsVictory() || !ok || winner != Black {
		t.Fatalf("d8h4: got %v, want victory for Black", r)
	}

	mated := b.ApplyEvalMove(PieceMove(D8, H4))
	if !mated.IsCheckmate() || !mated.IsInCheck(White) {
		t.Fatalf("board after d8h4 should be checkmate")
	}
}

func TestIllegalMoveIsReported(t *testing.T) {
	b := Default()
	for _, m := range []Move{PieceMove(E2, E5), PieceMove(E7, E5), PieceMove(E4, E5), KingSideCastle()} {
		r := b.PlayMove(m)
		got, ok := r.IllegalMove()
		if !r.IsIllegalMove() || !ok || got != m {
			t.Fatalf("PlayMove(%v) = %v, want illegal move", m, r)
		}
	}
}

func TestResign(t *testing.T) {
	r := Default().PlayMove(Resign())
	if w, ok := r.Winner(); !ok || w != Black {
		t.Fatalf("white resigning should hand Black the win, got %v", r)
	}
	r = Default().SetTurn(Black).PlayMove(Resign())
	if w, ok := r.Winner(); !ok || w != White {
		t.Fatalf("black resigning should hand White the win, got %v", r)
	}
}

func TestCastling(t *testing.T) {
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if !b.CanKingsideCastle(White) || !b.CanQueensideCastle(White) {
		t.Fatalf("white should be able to castle both ways")
	}

	next, ok := b.PlayMove(KingSideCastle()).NextBoard()
	if !ok {
		t.Fatalf("O-O should be playable")
	}
	if p, _ := next.Piece(G1); !p.IsKing() {
		t.Fatalf("king not on g1 after O-O")
	}
	if p, _ := next.Piece(F1); !p.IsRook() {
		t.Fatalf("rook not on f1 after O-O")
	}
	if next.CastlingRights(White) != (CastlingRights{}) {
		t.Fatalf("white keeps castling rights after castling")
	}
	if next.TurnColor() != Black {
		t.Fatalf("turn did not pass")
	}

	blocked := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	if blocked.CanKingsideCastle(White) {
		t.Fatalf("castling through a piece")
	}
	attacked := mustBoard(t, "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	if attacked.CanKingsideCastle(White) {
		t.Fatalf("castling through an attacked square")
	}
}

func TestEnPassant(t *testing.T) {
	next, ok := Default().PlayMove(PieceMove(E2, E4)).NextBoard()
	if !ok {
		t.Fatalf("e2e4 should be playable")
	}
	if ep, ok := next.EnPassant(); !ok || ep != E3 {
		t.Fatalf("en passant target = %v, %v", ep, ok)
	}

	b := mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	next, ok = b.PlayMove(PieceMove(E5, D6)).NextBoard()
	if !ok {
		t.Fatalf("en passant capture should be playable")
	}
	if next.HasPiece(D5) {
		t.Fatalf("captured pawn still on d5")
	}
	if p, _ := next.Piece(D6); !p.IsPawn() || p.Color() != White {
		t.Fatalf("d6 = %v", p)
	}
	if _, ok := next.EnPassant(); ok {
		t.Fatalf("en passant target should clear")
	}
}

func TestPromotion(t *testing.T) {
	b := mustBoard(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	next, ok := b.PlayMove(PieceMove(A7, A8)).NextBoard()
	if !ok {
		t.Fatalf("a7a8 should be playable")
	}
	p, _ := next.Piece(A8)
	if !p.IsQueen() || p.Color() != White || p.Pos() != A8 {
		t.Fatalf("a8 = %#v, want a white queen", p)
	}
	if !next.IsInCheck(Black) {
		t.Fatalf("new queen should give check along the back rank")
	}
}

func TestStalemate(t *testing.T) {
	b := mustBoard(t, "7k/4Q3/6K1/8/8/8/8/8 w - - 0 1")
	if r := b.PlayMove(PieceMove(E7, F7)); !r.IsStalemate() {
		t.Fatalf("Qf7 = %v, want stalemate", r)
	}

	bare := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if !bare.IsStalemate() {
		t.Fatalf("bare kings should be a draw")
	}
	if bare.HasSufficientMaterial(White) {
		t.Fatalf("a lone king cannot mate")
	}
	if !mustBoard(t, "4k3/8/8/8/8/8/8/2B1KN2 w - - 0 1").HasSufficientMaterial(White) {
		t.Fatalf("bishop and knight can mate")
	}
}

func TestBoardVariants(t *testing.T) {
	if got := Empty(); got.HasPiece(E1) || got.HasPiece(E8) {
		t.Fatalf("empty board has pieces")
	}

	h := Horde()
	if _, ok := h.KingPosition(White); ok {
		t.Fatalf("horde white has no king")
	}
	pawns := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p, ok := h.Piece(NewPosition(row, col)); ok && p.IsPawn() && p.Color() == White {
				pawns++
			}
		}
	}
	if pawns != 36 {
		t.Fatalf("horde has %d white pawns, want 36", pawns)
	}

	noBlack := Default().RemoveAll(Black)
	if _, ok := noBlack.KingPosition(Black); ok || noBlack.IsInCheck(Black) {
		t.Fatalf("RemoveAll(Black) left black pieces")
	}

	queens := Default().QueenAll(White)
	for _, pos := range []Position{A1, B1, A2, H2} {
		if p, _ := queens.Piece(pos); !p.IsQueen() {
			t.Fatalf("%v = %v, want queen", pos, p)
		}
	}
	if p, _ := queens.Piece(E1); !p.IsKing() {
		t.Fatalf("QueenAll must keep the king")
	}
}

func TestThreats(t *testing.T) {
	b := Default()
	if b.IsThreatened(E3, White) {
		t.Fatalf("e3 is not attacked by black")
	}
	if !b.IsThreatened(E6, White) {
		t.Fatalf("e6 is attacked by black pawns")
	}
	if b.IsInCheck(White) || b.IsCheckmate() || b.IsStalemate() {
		t.Fatalf("starting position is quiet")
	}
}

func TestFEN(t *testing.T) {
	fens := []string{
		StartingFEN,
		HordeFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range fens {
		if got := mustBoard(t, fen).FEN(); got != fen {
			t.Fatalf("round trip %q = %q", fen, got)
		}
	}

	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNZ w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - zero 1",
	}
	for _, fen := range bad {
		if _, err := FromFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("FromFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestBoardIdentity(t *testing.T) {
	a, b := Default(), Default()
	if a != b || a.Compare(b) != 0 {
		t.Fatalf("identical boards differ")
	}
	if a == a.ChangeTurn() {
		t.Fatalf("turn is part of board identity")
	}
	r1 := a.PlayMove(PieceMove(G1, F3))
	r2 := b.PlayMove(PieceMove(G1, F3))
	if r1 != r2 || r1.Compare(r2) != 0 {
		t.Fatalf("identical results differ")
	}
}

func TestAllSquaresDistinct(t *testing.T) {
	seen := make(map[Position]bool)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			seen[NewPosition(row, col)] = true
		}
	}
	if len(seen) != 64 {
		t.Fatalf("got %d distinct squares", len(seen))
	}
}
