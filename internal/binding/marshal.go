// FILE: internal/binding/marshal.go
package binding

import (
	"fmt"

	"github.com/Shopify/go-lua"
)

// Value is what an engine type must provide to cross into Lua
type Value[T any] interface {
	comparable
	Compare(T) int
	fmt.Stringer
	fmt.GoStringer
}

// Class marshals one engine value type. Wrapped values are Lua full
// userdata holding a copy of the engine value; two wrappers are equal
// exactly when their payloads are.
type Class[T Value[T]] struct {
	name string
}

func newClass[T Value[T]](name string) *Class[T] {
	return &Class[T]{name: name}
}

// Name is the class name seen from Lua
func (c *Class[T]) Name() string { return c.name }

// MetaTable is the registry key of the class metatable
func (c *Class[T]) MetaTable() string { return ModuleName + "." + c.name }

// Wrap pushes a copy of v onto the Lua stack
func (c *Class[T]) Wrap(l *lua.State, v T) {
	l.PushUserData(v)
	lua.SetMetaTableNamed(l, c.MetaTable())
}

// Unwrap returns the value at index, raising an argument error when it is
// not a wrapped T.
func (c *Class[T]) Unwrap(l *lua.State, index int) T {
	v, ok := lua.CheckUserData(l, index, c.MetaTable()).(T)
	if !ok {
		lua.ArgumentError(l, index, c.name+" expected")
	}
	return v
}

// Test is Unwrap without raising
func (c *Class[T]) Test(l *lua.State, index int) (T, bool) {
	v, ok := lua.TestUserData(l, index, c.MetaTable()).(T)
	return v, ok
}

// WrapOptional pushes v when ok and nil otherwise
func (c *Class[T]) WrapOptional(l *lua.State, v T, ok bool) {
	if !ok {
		l.PushNil()
		return
	}
	c.Wrap(l, v)
}

// WrapSlice pushes vs as a 1-based Lua array
func (c *Class[T]) WrapSlice(l *lua.State, vs []T) {
	l.CreateTable(len(vs), 0)
	for i, v := range vs {
		c.Wrap(l, v)
		l.RawSetInt(-2, i+1)
	}
}

// operators are the metamethods and conversions every class carries
func (c *Class[T]) operators() []Entry {
	binary := func(name string, op func(a, b T) bool) Entry {
		return Entry{Class: c.name, Name: name, Kind: Operator, Arity: 1, fn: func(f *frame) int {
			f.l.PushBoolean(op(c.Unwrap(f.l, 1), c.Unwrap(f.l, 2)))
			return 1
		}}
	}
	display := func(name string, kind Kind) Entry {
		return Entry{Class: c.name, Name: name, Kind: kind, fn: func(f *frame) int {
			f.l.PushString(c.Unwrap(f.l, 1).String())
			return 1
		}}
	}

	return []Entry{
		binary("__eq", func(a, b T) bool { return a == b }),
		binary("__lt", func(a, b T) bool { return a.Compare(b) < 0 }),
		binary("__le", func(a, b T) bool { return a.Compare(b) <= 0 }),
		display("__tostring", Operator),
		display("to_string", Method),
		{Class: c.name, Name: "inspect", Kind: Method, fn: func(f *frame) int {
			f.l.PushString(c.Unwrap(f.l, 1).GoString())
			return 1
		}},
	}
}

// install creates the class metatable: operators on the metatable itself,
// methods behind __index.
func (c *Class[T]) install(l *lua.State, entries []*Entry, fn func(*Entry) lua.Function) {
	lua.NewMetaTable(l, c.MetaTable())
	l.NewTable()
	for _, e := range entries {
		if e.Kind == Method {
			l.PushGoFunction(fn(e))
			l.SetField(-2, e.Name)
		}
	}
	l.SetField(-2, "__index")
	for _, e := range entries {
		if e.Kind == Operator {
			l.PushGoFunction(fn(e))
			l.SetField(-2, e.Name)
		}
	}
	l.PushString(c.name)
	l.SetField(-2, "__name")
	l.Pop(1)
}
