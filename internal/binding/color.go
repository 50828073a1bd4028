// FILE: internal/binding/color.go
package binding

import "silverpoint/internal/engine"

var colorClass = newClass[engine.Color]("Color")

func colorEntries() []Entry {
	return []Entry{
		constant(colorClass, "White", engine.White),
		constant(colorClass, "Black", engine.Black),
		transform(colorClass, "other", engine.Color.Other),
	}
}
