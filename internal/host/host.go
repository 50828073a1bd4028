// FILE: internal/host/host.go
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Shopify/go-lua"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"silverpoint/internal/binding"
)

var ErrClosed = errors.New("host closed")

// ScriptError is a Lua error raised by a chunk run through the host
type ScriptError struct {
	Chunk   string
	Message string
	// Syntax is set when the chunk failed to compile
	Syntax bool
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %s", e.Chunk, e.Message)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// Host owns one Lua state with the chess module installed
type Host struct {
	id     uuid.UUID
	lock   *Lock
	state  *lua.State
	log    *zap.Logger
	stdout io.Writer
}

type Option func(*Host)

func WithLogger(l *zap.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithStdout redirects the Lua print function
func WithStdout(w io.Writer) Option {
	return func(h *Host) { h.stdout = w }
}

// New creates a host. The returned host does not hold its lock.
func New(opts ...Option) (h *Host, err error) {
	h = &Host{
		id:     uuid.New(),
		lock:   NewLock(),
		log:    zap.NewNop(),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(zap.String("host", h.id.String()))

	h.lock.Lock()
	defer h.lock.Unlock()
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("failed to initialize lua state: %v", r)
		}
	}()

	state := lua.NewState()
	lua.OpenLibraries(state)
	state.PushGoFunction(h.print)
	state.SetGlobal("print")
	binding.Load().Install(state, h.lock)
	h.state = state

	h.log.Debug("host started", zap.String("module", binding.ModuleName), zap.String("version", binding.Version))
	return h, nil
}

func (h *Host) ID() uuid.UUID { return h.id }

// ExecutionLock is the lock that serialises all access to the Lua state
func (h *Host) ExecutionLock() *Lock { return h.lock }

// Do runs fn with the lock held. It is the way in for any goroutine that
// needs the Lua state. The stack is restored after fn returns, and a Lua
// error raised outside a protected call is returned rather than propagated.
func (h *Host) Do(ctx context.Context, fn func(l *lua.State) error) (err error) {
	if err := h.lock.acquire(ctx); err != nil {
		return err
	}
	defer h.lock.Unlock()

	l := h.state
	if l == nil {
		return ErrClosed
	}
	top := l.Top()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua state panic: %v", r)
			h.log.Error("unprotected lua error", zap.Any("value", r))
		}
		l.SetTop(top)
	}()
	return fn(l)
}

// Exec runs source as a chunk named name and returns the display form of
// every value it returns.
func (h *Host) Exec(ctx context.Context, name, source string) ([]string, error) {
	var out []string
	start := time.Now()
	err := h.Do(ctx, func(l *lua.State) error {
		top := l.Top()
		if err := lua.LoadBuffer(l, source, "="+name, ""); err != nil {
			return scriptError(l, name, err, true)
		}
		if err := l.ProtectedCall(0, lua.MultipleReturns, 0); err != nil {
			return scriptError(l, name, err, false)
		}
		for i := top + 1; i <= l.Top(); i++ {
			out = append(out, Display(l, i))
		}
		return nil
	})
	h.log.Debug("exec", zap.String("chunk", name), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	return out, err
}

// ExecFile runs a Lua file, discarding its results
func (h *Host) ExecFile(ctx context.Context, path string) error {
	start := time.Now()
	err := h.Do(ctx, func(l *lua.State) error {
		if err := lua.LoadFile(l, path, ""); err != nil {
			return scriptError(l, path, err, true)
		}
		if err := l.ProtectedCall(0, 0, 0); err != nil {
			return scriptError(l, path, err, false)
		}
		return nil
	})
	h.log.Debug("exec file", zap.String("path", path), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	return err
}

// Close drops the Lua state once no other stream holds the lock
func (h *Host) Close() error {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.state == nil {
		return ErrClosed
	}
	h.state = nil
	h.log.Debug("host closed")
	return nil
}

// Display converts the value at index with Lua's tostring
func Display(l *lua.State, index int) string {
	index = l.AbsIndex(index)
	l.Global("tostring")
	l.PushValue(index)
	l.Call(1, 1)
	s, _ := l.ToString(-1)
	l.Pop(1)
	return s
}

func scriptError(l *lua.State, chunk string, err error, syntax bool) error {
	msg, ok := l.ToString(-1)
	if !ok {
		msg = err.Error()
	}
	return &ScriptError{Chunk: chunk, Message: msg, Syntax: syntax, Err: err}
}

func (h *Host) print(l *lua.State) int {
	n := l.Top()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = Display(l, i)
	}
	if _, err := io.WriteString(h.stdout, strings.Join(parts, "\t")+"\n"); err != nil {
		h.log.Warn("print failed", zap.Error(err))
	}
	return 0
}
