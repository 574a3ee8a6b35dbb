package reactor

import (
	"context"
	"sync"
)

// Engine runs a Reactor: it fans actions out to mutate goroutines and
// serializes all reduces onto one state, publishing each new snapshot to
// subscribers. Stale mutate streams (superseded or cancelled) never touch
// the state.
type Engine[A any, M any, S any] struct {
	reactor Reactor[A, M, S]

	mu      sync.Mutex
	state   S
	flights map[string]*flight
	subs    []chan S
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

// NewEngine creates an engine seeded with the reactor's initial state.
func NewEngine[A any, M any, S any](r Reactor[A, M, S]) *Engine[A, M, S] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine[A, M, S]{
		reactor: r,
		state:   r.InitialState(),
		flights: make(map[string]*flight),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns the current snapshot.
func (e *Engine[A, M, S]) State() S {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Send dispatches an action. It never blocks on the reactor's I/O; mutations
// are applied as they arrive, except that mutations emitted synchronously by
// Mutate are reduced before Send returns. Actions implementing Superseder
// cancel any in-flight stream with the same key before starting.
func (e *Engine[A, M, S]) Send(action A) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	ctx := e.ctx
	var key string
	var gen uint64
	if s, ok := any(action).(Superseder); ok {
		key = s.SupersedeKey()
		if prev := e.flights[key]; prev != nil {
			prev.cancel()
			gen = prev.gen + 1
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(e.ctx)
		e.flights[key] = &flight{gen: gen, cancel: cancel}
	}
	state := e.state
	e.mu.Unlock()

	ch := e.reactor.Mutate(ctx, action, state)

	// Mutations the reactor emits synchronously are reduced before Send
	// returns, so a back-to-back Send observes them in its state snapshot.
	// Anything still pending is consumed asynchronously.
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return
			}
			e.apply(key, gen, m)
		default:
			e.wg.Add(1)
			go func() {
				defer e.wg.Done()
				for m := range ch {
					e.apply(key, gen, m)
				}
			}()
			return
		}
	}
}

// Drain blocks until every in-flight mutate stream has finished.
func (e *Engine[A, M, S]) Drain() {
	e.wg.Wait()
}

// Subscribe returns a mailbox that always holds the latest snapshot. A slow
// consumer never blocks the reduce loop: an unread snapshot is replaced, not
// queued. The current state is delivered immediately.
func (e *Engine[A, M, S]) Subscribe() <-chan S {
	ch := make(chan S, 1)
	e.mu.Lock()
	ch <- e.state
	e.subs = append(e.subs, ch)
	e.mu.Unlock()
	return ch
}

// Close cancels all in-flight work and waits for mutate streams to wind
// down. No mutation is applied after Close returns.
func (e *Engine[A, M, S]) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.cancel()
	e.mu.Unlock()

	e.wg.Wait()

	e.mu.Lock()
	for _, ch := range e.subs {
		close(ch)
	}
	e.subs = nil
	e.mu.Unlock()
}

func (e *Engine[A, M, S]) apply(key string, gen uint64, m M) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if key != "" {
		if f := e.flights[key]; f == nil || f.gen != gen {
			e.mu.Unlock()
			return
		}
	}
	e.state = e.reactor.Reduce(e.state, m)
	state := e.state
	subs := make([]chan S, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, ch := range subs {
		// Replace any unread snapshot with the newest one.
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}
