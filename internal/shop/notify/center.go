// Package notify holds the single current success/error notification for the
// most recent user action. The Center is an explicitly owned dependency
// injected into each orchestration unit rather than process-global hidden
// state, so the "at most one active notification" invariant survives without
// implicit coupling.
package notify

import (
	"sync"

	"finitefield.org/shopfront/internal/shop/api"
)

// Kind discriminates the notification variants.
type Kind string

const (
	// KindNone indicates no active notification.
	KindNone Kind = "none"
	// KindSuccess indicates the last action succeeded.
	KindSuccess Kind = "success"
	// KindError indicates the last action failed.
	KindError Kind = "error"
)

// State is an immutable snapshot of the center. Kind success implies Message
// is set and Err is nil; kind error implies the reverse; kind none carries
// neither. ID strictly increases on every transition to success or error and
// is never reused, letting a view tell a fresh notification from a stale
// render.
type State struct {
	Kind    Kind
	Message string
	Err     *api.APIError
	ID      uint64
}

// Center is the notification state machine. The zero value is unusable;
// construct via NewCenter.
type Center struct {
	mu    sync.Mutex
	state State
}

// NewCenter returns a Center in the none state.
func NewCenter() *Center {
	return &Center{state: State{Kind: KindNone}}
}

// Clear resets the center to the none state. Idempotent; the identifier is
// retained so later notifications keep increasing.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Kind = KindNone
	c.state.Message = ""
	c.state.Err = nil
}

// Success records a success message, clearing any prior error.
func (c *Center) Success(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ID++
	c.state.Kind = KindSuccess
	c.state.Message = message
	c.state.Err = nil
}

// Error records a failure, clearing any prior success message.
func (c *Center) Error(err *api.APIError) {
	if err == nil {
		err = api.NewError("unknown error", 0)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ID++
	c.state.Kind = KindError
	c.state.Message = ""
	c.state.Err = err
}

// State returns a snapshot of the current notification.
func (c *Center) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run is the single entry point that routes an action outcome through the
// center: it clears prior state, executes the action, and on success invokes
// onSuccess (whose body is expected to report the success message). The
// error branch is handled here so callers never need one. Concurrent actions
// are not serialised; the last writer wins.
func Run[T any](c *Center, action func() api.Result[T], onSuccess func(T)) api.Result[T] {
	c.Clear()
	result := action()
	if result.OK() {
		if onSuccess != nil {
			onSuccess(result.Value())
		}
	} else {
		c.Error(result.Err())
	}
	return result
}
