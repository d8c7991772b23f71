package production

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/comalice/tablefsm"
)

// ChannelPublisher forwards transition records to a Go channel. It is a
// tablefsm.Observer and may be shared by many machines.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	mu      sync.RWMutex
	ch      chan<- tablefsm.Record
	closed  bool
	dropped atomic.Uint64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- tablefsm.Record) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

// Observe publishes rec without blocking.
func (p *ChannelPublisher) Observe(rec tablefsm.Record) {
	_ = p.Publish(context.Background(), rec)
}

// Publish delivers rec if the channel has room and drops it otherwise.
// Records published after Close are dropped too.
func (p *ChannelPublisher) Publish(ctx context.Context, rec tablefsm.Record) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.dropped.Add(1)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case p.ch <- rec:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.dropped.Add(1)
		return nil // Non-blocking drop
	}
}

// Dropped returns the number of records dropped so far.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the output channel. It is safe to call more than once.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}
