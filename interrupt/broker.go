// Package interrupt provides the cooperative suspension primitive used to
// ask a human to complete an out-of-band step (here, authorization)
// before execution can usefully continue.
package interrupt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	ai "github.com/harborai/oxbridge"
)

// Interrupter submits interruption payloads to the external suspension
// mechanism. Implementations are expected to pause the enclosing
// execution, surface the request to a human operator, and return once the
// operator acknowledges (or the wait is abandoned).
type Interrupter interface {
	Interrupt(ctx context.Context, interrupts []ai.HumanInterrupt) error
}

// Pending is an interruption awaiting acknowledgment.
type Pending struct {
	// ID identifies this interruption for acknowledgment routing.
	ID string `json:"id"`
	// Interrupts is the payload handed to the suspension mechanism.
	Interrupts []ai.HumanInterrupt `json:"interrupts"`
}

// Sentinel errors for interrupted waits.
var (
	// ErrTimeout indicates no acknowledgment arrived in time.
	ErrTimeout = errors.New("interrupt: acknowledgment timeout")

	// ErrCancelled indicates the surrounding execution was cancelled
	// while waiting.
	ErrCancelled = errors.New("interrupt: wait cancelled")
)

// Broker is an in-process Interrupter. It registers each interruption
// under a fresh ID, notifies an onSubmit callback so a frontend can
// render it, and blocks until Accept is called with that ID.
//
// Acceptance is the only legal resumption: there is no reject, edit, or
// respond path, matching the interrupt payload's allow_* flags.
//
// Usage:
//
//	broker := interrupt.NewBroker(
//	    interrupt.WithOnSubmit(func(p interrupt.Pending) {
//	        surfaceToOperator(p)
//	    }),
//	)
//
//	// In the acknowledgment handler:
//	if err := broker.Accept(id); err != nil { ... }
type Broker struct {
	mu       sync.Mutex
	pending  map[string]chan struct{}
	payloads map[string]Pending
	timeout  time.Duration
	onSubmit func(Pending)
}

// BrokerOption configures a Broker.
type BrokerOption func(*Broker)

// WithTimeout sets how long Interrupt waits for an acknowledgment.
// The default is 5 minutes.
func WithTimeout(d time.Duration) BrokerOption {
	return func(b *Broker) {
		b.timeout = d
	}
}

// WithOnSubmit sets a callback invoked when an interruption is
// registered. This is where a server surfaces the authorization URL to a
// human (AG-UI event, log line, notification).
func WithOnSubmit(fn func(Pending)) BrokerOption {
	return func(b *Broker) {
		b.onSubmit = fn
	}
}

// NewBroker creates a Broker with the given options.
func NewBroker(opts ...BrokerOption) *Broker {
	b := &Broker{
		pending:  make(map[string]chan struct{}),
		payloads: make(map[string]Pending),
		timeout:  5 * time.Minute,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Interrupt registers the payload and blocks until Accept, timeout, or
// context cancellation. It returns nil only on acceptance.
func (b *Broker) Interrupt(ctx context.Context, interrupts []ai.HumanInterrupt) error {
	p := Pending{
		ID:         uuid.New().String(),
		Interrupts: interrupts,
	}

	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.pending[p.ID] = ch
	b.payloads[p.ID] = p
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, p.ID)
		delete(b.payloads, p.ID)
		b.mu.Unlock()
	}()

	if b.onSubmit != nil {
		b.onSubmit(p)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	select {
	case <-ch:
		return nil
	case <-timeoutCtx.Done():
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return ErrTimeout
	}
}

// Accept acknowledges the pending interruption with the given ID and
// unblocks its waiter. Returns an error if nothing is pending under that
// ID.
func (b *Broker) Accept(id string) error {
	b.mu.Lock()
	ch, ok := b.pending[id]
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("interrupt: no pending interruption %q", id)
	}

	// Non-blocking send; a duplicate accept is a no-op.
	select {
	case ch <- struct{}{}:
	default:
	}
	return nil
}

// Pending returns the interruptions currently awaiting acknowledgment.
func (b *Broker) Pending() []Pending {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Pending, 0, len(b.payloads))
	for _, p := range b.payloads {
		out = append(out, p)
	}
	return out
}

// PendingCount returns the number of pending interruptions.
func (b *Broker) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// HasPending returns true if any interruption is awaiting acknowledgment.
func (b *Broker) HasPending() bool {
	return b.PendingCount() > 0
}
