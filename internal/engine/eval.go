// FILE: internal/engine/eval.go
package engine

import (
	"math"
	"strings"
)

// squareWeights are piece-square bonuses from White's point of view, row 0
// being rank 8. Indexed by Kind.
var squareWeights = [6][8][8]float64{
	King: {
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-2, -3, -3, -4, -4, -3, -3, -2},
		{-1, -2, -2, -2, -2, -2, -2, -1},
		{2, 2, 0, 0, 0, 0, 2, 2},
		{2, 3, 1, 0, 0, 1, 3, 2},
	},
	Queen: {
		{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1},
		{-0.5, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
		{0, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
		{-1, 0.5, 0.5, 0.5, 0.5, 0.5, 0, -1},
		{-1, 0, 0.5, 0, 0, 0, 0, -1},
		{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
	},
	Rook: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0.5, 1, 1, 1, 1, 1, 1, 0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{0, 0, 0, 0.5, 0.5, 0, 0, 0},
	},
	Bishop: {
		{-2, -1, -1, -1, -1, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 0.5, 1, 1, 0.5, 0, -1},
		{-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{-1, 1, 1, 1, 1, 1, 1, -1},
		{-1, 0.5, 0, 0, 0, 0, 0.5, -1},
		{-2, -1, -1, -1, -1, -1, -1, -2},
	},
	Knight: {
		{-5, -4, -3, -3, -3, -3, -4, -5},
		{-4, -2, 0, 0, 0, 0, -2, -4},
		{-3, 0, 1, 1.5, 1.5, 1, 0, -3},
		{-3, 0.5, 1.5, 2, 2, 1.5, 0.5, -3},
		{-3, 0, 1.5, 2, 2, 1.5, 0, -3},
		{-3, 0.5, 1, 1.5, 1.5, 1, 0.5, -3},
		{-4, -2, 0, 0.5, 0.5, 0, -2, -4},
		{-5, -4, -3, -3, -3, -3, -4, -5},
	},
	Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5},
		{0, 0, 0, 2, 2, 0, 0, 0},
		{0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5},
		{0.5, 1, 1, -2, -2, 1, 1, 0.5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// ValueFor scores the position from ally's side: its weighted material
// minus the opponent's.
func (b Board) ValueFor(ally Color) float64 {
	var total float64
	for _, s := range b.squares {
		p, ok := s.Piece()
		if !ok {
			continue
		}
		if p.color == ally {
			total += p.WeightedValue()
		} else {
			total -= p.WeightedValue()
		}
	}
	return total
}

// MaterialAdvantage is c's material minus the opponent's
func (b Board) MaterialAdvantage(c Color) int {
	total := 0
	for _, s := range b.squares {
		p, ok := s.Piece()
		if !ok {
			continue
		}
		if p.color == c {
			total += p.MaterialValue()
		} else {
			total -= p.MaterialValue()
		}
	}
	return total
}

// RatingBar draws a bar of the given length: White's share of a shallow
// two-sided evaluation as '▓', Black's as '░'.
func (b Board) RatingBar(length int) string {
	if length <= 0 {
		return ""
	}

	best, _, yourBest := b.BestNextMove(2)
	_, _, yourWorst := b.WorstNextMove(2)
	yours := yourBest + yourWorst

	reply := b.ApplyEvalMove(best)
	_, _, theirBest := reply.BestNextMove(2)
	_, _, theirWorst := reply.WorstNextMove(2)
	theirs := theirBest + theirWorst

	if yours < 0 {
		theirs -= yours
		yours = 0
	} else if theirs < 0 {
		yours -= theirs
		theirs = 0
	}

	share := 0.5
	if total := yours + theirs; total > 0 {
		share = yours / total
	}
	if b.turn == Black {
		share = 1 - share
	}

	white := int(math.Round(share * float64(length)))
	white = min(max(white, 0), length)
	return strings.Repeat("▓", white) + strings.Repeat("░", length-white)
}
