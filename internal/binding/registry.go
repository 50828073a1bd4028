// FILE: internal/binding/registry.go
package binding

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"
)

const (
	// ModuleName is the Lua global and require name of the module
	ModuleName = "silverpoint"
	Version    = "0.1.0"
)

// Kind classifies catalog entries
type Kind uint8

const (
	Constructor Kind = iota
	Method
	Operator
	Constant
)

var kindNames = [...]string{"constructor", "method", "operator", "constant"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Entry is one host-callable name. Arity counts arguments after the
// receiver for methods and operators.
type Entry struct {
	Class    string
	Name     string
	Kind     Kind
	Arity    int
	Blocking bool

	fn    func(f *frame) int
	value func(l *lua.State)
}

func (e *Entry) String() string {
	switch e.Kind {
	case Method, Operator:
		return e.Class + ":" + e.Name
	}
	return e.Class + "." + e.Name
}

// stackArity is the number of Lua arguments a call must carry
func (e *Entry) stackArity() int {
	if e.Kind == Method || e.Kind == Operator {
		return e.Arity + 1
	}
	return e.Arity
}

// frame is the state a single entry call sees
type frame struct {
	l     *lua.State
	lock  sync.Locker
	entry *Entry
}

type class interface {
	Name() string
	MetaTable() string
	operators() []Entry
	install(l *lua.State, entries []*Entry, fn func(*Entry) lua.Function)
}

// Catalog is the immutable registration table
type Catalog struct {
	classes []class
	entries []*Entry
	index   map[string]*Entry
}

var (
	catalog     *Catalog
	catalogOnce sync.Once
)

// Load returns the process-wide catalog, building it on first use
func Load() *Catalog {
	catalogOnce.Do(func() {
		catalog = build()
		Logger().Debug("catalog built", zap.Int("entries", len(catalog.entries)))
	})
	return catalog
}

func build() *Catalog {
	c := &Catalog{index: make(map[string]*Entry)}
	add := func(cl class, entries []Entry) {
		c.classes = append(c.classes, cl)
		for _, e := range append(entries, cl.operators()...) {
			key := e.Class + "." + e.Name
			if _, dup := c.index[key]; dup {
				panic("binding: duplicate catalog entry " + key)
			}
			c.index[key] = &e
			c.entries = append(c.entries, &e)
		}
	}

	add(colorClass, colorEntries())
	add(positionClass, positionEntries())
	add(pieceClass, pieceEntries())
	add(squareClass, squareEntries())
	add(moveClass, moveEntries())
	add(resultClass, resultEntries())
	add(boardClass, boardEntries())
	return c
}

// Entries lists every entry in registration order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = *e
	}
	return out
}

// Classes lists the class names in registration order
func (c *Catalog) Classes() []string {
	out := make([]string, len(c.classes))
	for i, cl := range c.classes {
		out[i] = cl.Name()
	}
	return out
}

func (c *Catalog) Lookup(class, name string) (Entry, bool) {
	e, ok := c.index[class+"."+name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Constants lists the constant names of a class, sorted
func (c *Catalog) Constants(class string) []string {
	var names []string
	for _, e := range c.entries {
		if e.Class == class && e.Kind == Constant {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Install registers the module in l as the global ModuleName and in
// package.loaded. lock is the host lock guarding l; it must be held
// whenever l runs.
func (c *Catalog) Install(l *lua.State, lock sync.Locker) {
	fn := func(e *Entry) lua.Function {
		want := e.stackArity()
		return func(l *lua.State) int {
			if got := l.Top(); got != want {
				lua.Errorf(l, "%s", fmt.Sprintf("%s: wrong number of arguments (expected %d, got %d)",
					e.String(), e.Arity, got-(want-e.Arity)))
				return 0
			}
			return e.fn(&frame{l: l, lock: lock, entry: e})
		}
	}

	byClass := make(map[string][]*Entry)
	for _, e := range c.entries {
		byClass[e.Class] = append(byClass[e.Class], e)
	}
	for _, cl := range c.classes {
		cl.install(l, byClass[cl.Name()], fn)
	}

	open := func(l *lua.State) int {
		l.NewTable()
		for _, cl := range c.classes {
			l.NewTable()
			for _, e := range byClass[cl.Name()] {
				switch e.Kind {
				case Constructor:
					l.PushGoFunction(fn(e))
				case Constant:
					e.value(l)
				default:
					continue
				}
				l.SetField(-2, e.Name)
			}
			l.SetField(-2, cl.Name())
		}
		l.PushString(Version)
		l.SetField(-2, "VERSION")
		return 1
	}
	lua.Require(l, ModuleName, open, true)
	l.Pop(1)
}
