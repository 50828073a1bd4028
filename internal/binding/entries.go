// FILE: internal/binding/entries.go
package binding

import (
	"github.com/Shopify/go-lua"
)

func constructor(class, name string, arity int, fn func(f *frame) int) Entry {
	return Entry{Class: class, Name: name, Kind: Constructor, Arity: arity, fn: fn}
}

func method(class, name string, arity int, fn func(f *frame) int) Entry {
	return Entry{Class: class, Name: name, Kind: Method, Arity: arity, fn: fn}
}

func constant[T Value[T]](c *Class[T], name string, v T) Entry {
	return Entry{Class: c.name, Name: name, Kind: Constant, value: func(l *lua.State) { c.Wrap(l, v) }}
}

// slow marks an entry whose body goes through the dispatcher
func slow(e Entry) Entry {
	e.Blocking = true
	return e
}

func predicate[T Value[T]](c *Class[T], name string, p func(T) bool) Entry {
	return method(c.name, name, 0, func(f *frame) int {
		f.l.PushBoolean(p(c.Unwrap(f.l, 1)))
		return 1
	})
}

func relation[T Value[T]](c *Class[T], name string, p func(T, T) bool) Entry {
	return method(c.name, name, 1, func(f *frame) int {
		f.l.PushBoolean(p(c.Unwrap(f.l, 1), c.Unwrap(f.l, 2)))
		return 1
	})
}

func transform[T Value[T]](c *Class[T], name string, t func(T) T) Entry {
	return method(c.name, name, 0, func(f *frame) int {
		c.Wrap(f.l, t(c.Unwrap(f.l, 1)))
		return 1
	})
}

func (f *frame) integer(index int) int {
	return lua.CheckInteger(f.l, index)
}

func (f *frame) number(index int) float64 {
	return lua.CheckNumber(f.l, index)
}

func (f *frame) text(index int) string {
	return lua.CheckString(f.l, index)
}

func (f *frame) boolean(index int) bool {
	lua.CheckType(f.l, index, lua.TypeBoolean)
	return f.l.ToBoolean(index)
}
