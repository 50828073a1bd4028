// FILE: internal/binding/dispatch.go
package binding

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AbnormalTermination is returned by Dispatch when the unit of work panicked
type AbnormalTermination struct {
	Value any
	Stack []byte
}

func (e *AbnormalTermination) Error() string {
	return fmt.Sprintf("native call terminated abnormally: %v", e.Value)
}

// Unwrap exposes a panic value that was itself an error
func (e *AbnormalTermination) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Dispatch runs work with the host lock released. The lock must be held on
// entry and is held again when Dispatch returns, on every path. A panic in
// work is recovered while the lock is still released and returned as
// *AbnormalTermination.
func Dispatch[T any](lock sync.Locker, work func() T) (result T, err error) {
	lock.Unlock()
	defer lock.Lock()
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, &AbnormalTermination{Value: r, Stack: debug.Stack()}
		}
	}()
	return work(), nil
}

// blocking dispatches work on behalf of the entry being called and raises
// the failure in Lua once the lock is back.
func blocking[T any](f *frame, work func() T) T {
	start := time.Now()
	v, err := Dispatch(f.lock, work)
	elapsed := time.Since(start)
	if err != nil {
		Logger().Warn("dispatched call failed",
			zap.String("entry", f.entry.String()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		raise(f.l, err)
		return v
	}
	Logger().Debug("dispatched call",
		zap.String("entry", f.entry.String()),
		zap.Duration("elapsed", elapsed))
	return v
}
