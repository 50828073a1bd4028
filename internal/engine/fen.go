// FILE: internal/engine/fen.go
package engine

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	HordeFEN    = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses Forsyth-Edwards Notation. The move clocks are validated
// but not kept; boards carry no move counters.
func FromFEN(fen string) (Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return Board{}, fmt.Errorf("%w: expected 6 parts, got %d", ErrInvalidFEN, len(parts))
	}

	b := Board{}

	// Parse board
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: expected 8 ranks", ErrInvalidFEN)
	}

	for r := 0; r < 8; r++ {
		row := 7 - r
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return Board{}, fmt.Errorf("%w: too many pieces in rank %d", ErrInvalidFEN, row+1)
			}
			p, ok := pieceFromLetter(ch)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown piece %q in rank %d", ErrInvalidFEN, ch, row+1)
			}
			b.put(NewPosition(row, file), p)
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, row+1, file)
		}
	}

	switch parts[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return Board{}, fmt.Errorf("%w: turn must be 'w' or 'b'", ErrInvalidFEN)
	}

	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.castling[White].Kingside = true
			case 'Q':
				b.castling[White].Queenside = true
			case 'k':
				b.castling[Black].Kingside = true
			case 'q':
				b.castling[Black].Queenside = true
			default:
				return Board{}, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, parts[2])
			}
		}
	}

	if parts[3] != "-" {
		pos, err := ParsePosition(parts[3])
		if err != nil {
			return Board{}, fmt.Errorf("%w: en passant target: %v", ErrInvalidFEN, err)
		}
		b.setEnPassant(pos, true)
	}

	var halfmove, fullmove int
	if _, err := fmt.Sscanf(parts[4], "%d", &halfmove); err != nil {
		return Board{}, fmt.Errorf("%w: halfmove counter", ErrInvalidFEN)
	}
	if _, err := fmt.Sscanf(parts[5], "%d", &fullmove); err != nil {
		return Board{}, fmt.Errorf("%w: fullmove counter", ErrInvalidFEN)
	}

	return b, nil
}

// FEN renders the board; the clocks are always "0 1"
func (b Board) FEN() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		gap := 0
		for col := 0; col < 8; col++ {
			p, ok := b.Piece(NewPosition(row, col))
			if !ok {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteByte(byte('0' + gap))
				gap = 0
			}
			sb.WriteByte(p.fenLetter())
		}
		if gap > 0 {
			sb.WriteByte(byte('0' + gap))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if b.castling[White].Kingside {
		rights += "K"
	}
	if b.castling[White].Queenside {
		rights += "Q"
	}
	if b.castling[Black].Kingside {
		rights += "k"
	}
	if b.castling[Black].Queenside {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	if b.hasEnPassant {
		sb.WriteString(" " + b.enPassant.String())
	} else {
		sb.WriteString(" -")
	}
	sb.WriteString(" 0 1")

	return sb.String()
}

func pieceFromLetter(ch rune) (Piece, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	idx := strings.IndexRune("kqrbnp", ch)
	if idx < 0 {
		return Piece{}, false
	}
	return Piece{kind: Kind(idx), color: color}, true
}
