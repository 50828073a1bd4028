// FILE: internal/binding/errors.go
package binding

import (
	"github.com/Shopify/go-lua"
)

// raise converts err into a Lua error whose value is err's message, unchanged.
// It does not return.
func raise(l *lua.State, err error) {
	l.PushString(err.Error())
	l.Error()
}

// check raises err when it is non-nil and otherwise returns v
func check[T any](l *lua.State, v T, err error) T {
	if err != nil {
		raise(l, err)
	}
	return v
}
