// FILE: internal/engine/search.go
package engine

// searchInfinity bounds every score; mate and no-move nodes evaluate to it.
const searchInfinity = 999999.0

// Minimax is a plain alpha-beta search from forColor's point of view.
// Every visited node increments *nodes.
func (b Board) Minimax(depth int, alpha, beta float64, maximizing bool, forColor Color, nodes *uint64) float64 {
	if nodes == nil {
		nodes = new(uint64)
	}
	*nodes++
	if depth <= 0 {
		return b.ValueFor(forColor)
	}

	if maximizing {
		best := -searchInfinity
		for _, m := range b.LegalMoves() {
			best = max(best, b.ApplyEvalMove(m).Minimax(depth-1, alpha, beta, false, forColor, nodes))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := searchInfinity
	for _, m := range b.LegalMoves() {
		best = min(best, b.ApplyEvalMove(m).Minimax(depth-1, alpha, beta, true, forColor, nodes))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestNextMove searches depth plies below each legal move and returns the
// best one with the number of nodes visited and its score. With no legal
// move it returns Resign.
func (b Board) BestNextMove(depth int) (Move, uint64, float64) {
	return b.rootSearch(depth, true)
}

// WorstNextMove is BestNextMove picking the lowest scoring move
func (b Board) WorstNextMove(depth int) (Move, uint64, float64) {
	return b.rootSearch(depth, false)
}

func (b Board) rootSearch(depth int, best bool) (Move, uint64, float64) {
	var nodes uint64
	chosen, value := Resign(), -searchInfinity
	if !best {
		value = searchInfinity
	}

	color := b.turn
	for _, m := range b.LegalMoves() {
		v := b.ApplyEvalMove(m).Minimax(depth, -1000000, 1000000, !best, color, &nodes)
		if (best && v >= value) || (!best && v <= value) {
			chosen, value = m, v
		}
	}
	return chosen, nodes, value
}
