// Package bridge connects the chat assistant's filter commands to the product
// listing's local filter state. The listing view registers an apply callback on
// mount and unregisters on unmount; the chat widget dispatches commands without
// holding any reference to the view. At most one registrant is meaningful at a
// time, so registration is a single overwritable slot, not a subscriber list.
package bridge

import (
	"sync"
	"time"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

// DefaultBufferTTL bounds how long an undelivered command waits for a listing
// view to mount. The source of this protocol fired the dispatch on a fixed
// 500ms timer after navigation and dropped the command if the view wasn't
// ready; buffering the newest command until the view registers removes that
// race while keeping at-most-once delivery.
const DefaultBufferTTL = 5 * time.Second

// ApplyFunc is the callback a mounted listing view registers to receive
// filter commands.
type ApplyFunc func(models.FilterCommand)

type pending struct {
	cmd   models.FilterCommand
	timer *time.Timer
}

// FilterBridge is a single-slot handoff point between the chat widget and the
// currently mounted listing view.
type FilterBridge struct {
	mu        sync.Mutex
	apply     ApplyFunc
	pending   *pending
	bufferTTL time.Duration
	onExpire  func(models.FilterCommand)
}

// New returns a bridge that buffers the most recent undelivered command for
// DefaultBufferTTL.
func New() *FilterBridge {
	return &FilterBridge{bufferTTL: DefaultBufferTTL}
}

// NewWithTTL returns a bridge with a custom buffer window. A non-positive ttl
// disables buffering entirely: dispatching with no registrant becomes a pure
// fire-and-forget no-op.
func NewWithTTL(ttl time.Duration) *FilterBridge {
	return &FilterBridge{bufferTTL: ttl}
}

// OnExpire sets a callback invoked when a buffered command expires
// undelivered. The chat widget uses it to tell the user the filter could not
// be applied. Must be set before the bridge is shared.
func (b *FilterBridge) OnExpire(fn func(models.FilterCommand)) {
	b.mu.Lock()
	b.onExpire = fn
	b.mu.Unlock()
}

// Register stores the apply callback for the currently mounted listing view.
// Registering again overwrites the previous registration: only one view can be
// meaningfully mounted at a time, so last-registered wins. If a buffered
// command is still within its window it is delivered to fn exactly once.
func (b *FilterBridge) Register(fn ApplyFunc) {
	b.mu.Lock()
	b.apply = fn
	var drained *models.FilterCommand
	if b.pending != nil {
		b.pending.timer.Stop()
		cmd := b.pending.cmd
		drained = &cmd
		b.pending = nil
	}
	b.mu.Unlock()

	// Deliver outside the lock so the callback may dispatch again.
	if drained != nil && fn != nil {
		fn(*drained)
	}
}

// Unregister clears the stored callback. Safe to call when nothing is
// registered.
func (b *FilterBridge) Unregister() {
	b.mu.Lock()
	b.apply = nil
	b.mu.Unlock()
}

// Registered reports whether a listing view is currently registered.
func (b *FilterBridge) Registered() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.apply != nil
}

// Dispatch hands a command to the registered listing view. The callback runs
// synchronously on the caller's goroutine. With no registrant the newest
// command is buffered for the bridge's window (newest wins, a single slot);
// after the window expires it is dropped silently apart from the OnExpire
// callback. Dispatch never errors: a missed filter is recoverable by the user
// re-applying filters by hand.
func (b *FilterBridge) Dispatch(cmd models.FilterCommand) {
	b.mu.Lock()
	if b.apply != nil {
		fn := b.apply
		b.mu.Unlock()
		fn(cmd)
		return
	}

	if b.bufferTTL <= 0 {
		b.mu.Unlock()
		return
	}

	if b.pending != nil {
		b.pending.timer.Stop()
	}
	p := &pending{cmd: cmd}
	p.timer = time.AfterFunc(b.bufferTTL, func() { b.expire(p) })
	b.pending = p
	b.mu.Unlock()
}

func (b *FilterBridge) expire(p *pending) {
	b.mu.Lock()
	if b.pending != p {
		// Already drained or replaced by a newer command.
		b.mu.Unlock()
		return
	}
	b.pending = nil
	fn := b.onExpire
	b.mu.Unlock()

	if fn != nil {
		fn(p.cmd)
	}
}
