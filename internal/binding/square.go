// FILE: internal/binding/square.go
package binding

import "silverpoint/internal/engine"

var squareClass = newClass[engine.Square]("Square")

func squareEntries() []Entry {
	return []Entry{
		constant(squareClass, "Empty", engine.EmptySquare),
		predicate(squareClass, "is_empty", engine.Square.IsEmpty),
		method(squareClass.name, "piece", 0, func(f *frame) int {
			p, ok := squareClass.Unwrap(f.l, 1).Piece()
			pieceClass.WrapOptional(f.l, p, ok)
			return 1
		}),
	}
}
