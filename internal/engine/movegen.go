// FILE: internal/engine/movegen.go
package engine

var (
	knightSteps   = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingSteps     = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	diagonalSteps = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// pathClear reports whether every square strictly between from and to is empty
func (b Board) pathClear(from, to Position) bool {
	ray := from.ray(to)
	for _, pos := range ray[:len(ray)-1] {
		if b.HasPiece(pos) {
			return false
		}
	}
	return true
}

// attacks reports whether p attacks target, regardless of what stands on it
func (b Board) attacks(p Piece, target Position) bool {
	if !target.OnBoard() || target == p.pos {
		return false
	}
	switch p.kind {
	case Pawn:
		return target.Row() == p.pos.Row()+p.color.forward() && abs(target.Col()-p.pos.Col()) == 1
	case Knight:
		return p.pos.IsKnightMove(target)
	case King:
		return p.pos.IsAdjacentTo(target)
	case Bishop:
		return p.pos.IsDiagonalTo(target) && b.pathClear(p.pos, target)
	case Rook:
		return p.pos.IsOrthogonalTo(target) && b.pathClear(p.pos, target)
	case Queen:
		return (p.pos.IsDiagonalTo(target) || p.pos.IsOrthogonalTo(target)) && b.pathClear(p.pos, target)
	}
	return false
}

// canReach is the piece-movement rule without king safety
func (b Board) canReach(p Piece, to Position) bool {
	if !to.OnBoard() || to == p.pos || b.HasAllyPiece(to, p.color) {
		return false
	}
	if p.kind != Pawn {
		return b.attacks(p, to)
	}

	up := p.pos.PawnUp(p.color)
	switch {
	case to == up:
		return b.HasNoPiece(to)
	case p.IsStartingPawn() && to == up.PawnUp(p.color):
		return b.HasNoPiece(up) && b.HasNoPiece(to)
	case b.attacks(p, to):
		return b.HasEnemyPiece(to, p.color) || (b.hasEnPassant && to == b.enPassant)
	}
	return false
}

// candidates lists squares a piece might move to before legality filtering
func (b Board) candidates(p Piece) []Position {
	var out []Position
	step := func(steps [][2]int) {
		for _, s := range steps {
			if to := p.pos.add(s[0], s[1]); to.OnBoard() {
				out = append(out, to)
			}
		}
	}
	slide := func(steps [][2]int) {
		for _, s := range steps {
			for to := p.pos.add(s[0], s[1]); to.OnBoard(); to = to.add(s[0], s[1]) {
				out = append(out, to)
				if b.HasPiece(to) {
					break
				}
			}
		}
	}

	switch p.kind {
	case Pawn:
		up := p.pos.PawnUp(p.color)
		for _, to := range []Position{up, up.PawnUp(p.color), up.NextLeft(), up.NextRight()} {
			if to.OnBoard() {
				out = append(out, to)
			}
		}
	case Knight:
		step(knightSteps[:])
	case King:
		step(kingSteps[:])
	case Bishop:
		slide(diagonalSteps[:])
	case Rook:
		slide(straightSteps[:])
	case Queen:
		slide(diagonalSteps[:])
		slide(straightSteps[:])
	}
	return out
}

// IsThreatened reports whether any piece not of color ally attacks pos
func (b Board) IsThreatened(pos Position, ally Color) bool {
	for _, s := range b.squares {
		if p, ok := s.Piece(); ok && p.color != ally && b.attacks(p, pos) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked; a missing king is never in check
func (b Board) IsInCheck(c Color) bool {
	king, ok := b.KingPosition(c)
	return ok && b.IsThreatened(king, c)
}

func (b Board) CanKingsideCastle(c Color) bool {
	return b.canCastle(c, true)
}

func (b Board) CanQueensideCastle(c Color) bool {
	return b.canCastle(c, false)
}

func (b Board) canCastle(c Color, kingside bool) bool {
	rights := b.castling[c]
	row := c.backRow()
	rookCol, empty, safe := 0, []int{1, 2, 3}, []int{2, 3}
	if kingside {
		rookCol, empty, safe = 7, []int{5, 6}, []int{5, 6}
	}
	if (kingside && !rights.Kingside) || (!kingside && !rights.Queenside) {
		return false
	}

	king, ok := b.Piece(NewPosition(row, 4))
	if !ok || king.kind != King || king.color != c {
		return false
	}
	rook, ok := b.Piece(NewPosition(row, rookCol))
	if !ok || rook.kind != Rook || rook.color != c {
		return false
	}
	for _, col := range empty {
		if b.HasPiece(NewPosition(row, col)) {
			return false
		}
	}
	if b.IsInCheck(c) {
		return false
	}
	for _, col := range safe {
		if b.IsThreatened(NewPosition(row, col), c) {
			return false
		}
	}
	return true
}

// isLegalMove checks m for color c, including that c's king is not left in check
func (b Board) isLegalMove(m Move, c Color) bool {
	switch m.kind {
	case MoveResign:
		return true
	case MoveKingSideCastle:
		return b.CanKingsideCastle(c)
	case MoveQueenSideCastle:
		return b.CanQueensideCastle(c)
	}

	p, ok := b.Piece(m.from)
	if !ok || p.color != c || !b.canReach(p, m.to) {
		return false
	}
	return !b.applyMove(m).IsInCheck(c)
}

// LegalMoves lists every legal move for the side to move, castles last
func (b Board) LegalMoves() []Move {
	var moves []Move
	b.eachLegalMove(func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

func (b Board) hasLegalMove() bool {
	found := false
	b.eachLegalMove(func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove calls yield per legal move until yield returns false
func (b Board) eachLegalMove(yield func(Move) bool) {
	c := b.turn
	for _, s := range b.squares {
		p, ok := s.Piece()
		if !ok || p.color != c {
			continue
		}
		for _, to := range b.candidates(p) {
			m := PieceMove(p.pos, to)
			if b.isLegalMove(m, c) && !yield(m) {
				return
			}
		}
	}
	if b.CanKingsideCastle(c) && !yield(KingSideCastle()) {
		return
	}
	if b.CanQueensideCastle(c) {
		yield(QueenSideCastle())
	}
}

// applyMove performs m for the side to move without changing the turn or
// checking legality.
func (b Board) applyMove(m Move) Board {
	c := b.turn
	row := c.backRow()
	switch m.kind {
	case MoveKingSideCastle, MoveQueenSideCastle:
		kingTo, rookFrom, rookTo := 6, 7, 5
		if m.kind == MoveQueenSideCastle {
			kingTo, rookFrom, rookTo = 2, 0, 3
		}
		king, okKing := b.Piece(NewPosition(row, 4))
		rook, okRook := b.Piece(NewPosition(row, rookFrom))
		if !okKing || !okRook {
			return b
		}
		b.clear(king.pos)
		b.clear(rook.pos)
		b.put(NewPosition(row, kingTo), king)
		b.put(NewPosition(row, rookTo), rook)
		b.castling[c] = CastlingRights{}
		b.setEnPassant(Position{}, false)
		return b

	case MoveResign:
		return b
	}

	p, ok := b.Piece(m.from)
	if !ok || m.to.OffBoard() {
		return b
	}
	wasEnPassant, target := b.hasEnPassant, b.enPassant
	b.setEnPassant(Position{}, false)

	if p.kind == Pawn {
		if wasEnPassant && m.to == target && m.from.Col() != m.to.Col() && b.HasNoPiece(m.to) {
			b.clear(m.to.PawnBack(p.color))
		}
		if abs(m.to.Row()-m.from.Row()) == 2 {
			b.setEnPassant(m.from.PawnUp(p.color), true)
		}
		if m.to.Row() == p.color.Other().backRow() {
			p.kind = Queen
		}
	}

	switch {
	case p.kind == King:
		b.castling[p.color] = CastlingRights{}
	case p.kind == Rook && m.from == NewPosition(p.color.backRow(), 0):
		b.castling[p.color].Queenside = false
	case p.kind == Rook && m.from == NewPosition(p.color.backRow(), 7):
		b.castling[p.color].Kingside = false
	}
	enemy := p.color.Other()
	switch m.to {
	case NewPosition(enemy.backRow(), 0):
		b.castling[enemy].Queenside = false
	case NewPosition(enemy.backRow(), 7):
		b.castling[enemy].Kingside = false
	}

	b.clear(m.from)
	b.put(m.to, p)
	return b
}

// ApplyEvalMove plays m assuming it is legal and passes the turn
func (b Board) ApplyEvalMove(m Move) Board {
	return b.applyMove(m).ChangeTurn()
}

// PlayMove plays m for the side to move. Illegal moves are reported in the
// result rather than as an error.
func (b Board) PlayMove(m Move) GameResult {
	mover := b.turn
	if m.kind == MoveResign {
		return victory(mover.Other())
	}
	if !b.isLegalMove(m, mover) {
		return illegalMove(m)
	}

	next := b.ApplyEvalMove(m)
	switch {
	case next.IsCheckmate():
		return victory(mover)
	case next.IsStalemate():
		return stalemate()
	}
	return continuing(next)
}

func (b Board) IsCheckmate() bool {
	return b.IsInCheck(b.turn) && !b.hasLegalMove()
}

// IsStalemate also covers the draw where neither side can mate
func (b Board) IsStalemate() bool {
	if !b.IsInCheck(b.turn) && !b.hasLegalMove() {
		return true
	}
	return b.HasInsufficientMaterial(White) && b.HasInsufficientMaterial(Black)
}

func (b Board) HasSufficientMaterial(c Color) bool {
	var bishops, knights int
	for _, s := range b.squares {
		p, ok := s.Piece()
		if !ok || p.color != c {
			continue
		}
		switch p.kind {
		case Pawn, Rook, Queen:
			return true
		case Bishop:
			bishops++
		case Knight:
			knights++
		}
	}
	return bishops >= 2 || (bishops >= 1 && knights >= 1) || knights >= 3
}

func (b Board) HasInsufficientMaterial(c Color) bool {
	return !b.HasSufficientMaterial(c)
}
