// Package reactor implements the action -> mutation -> state loop that drives
// each screen. A Reactor turns actions into an asynchronous stream of
// mutations and folds mutations into immutable state snapshots; the Engine
// serializes every fold, so screens need no locking of their own.
package reactor

import "context"

// Reactor defines one screen's state machine.
//
// Mutate may suspend on I/O and must close the returned channel when the
// action is fully handled; it must stop emitting promptly once ctx is
// cancelled. Reduce is pure, synchronous and total.
type Reactor[A any, M any, S any] interface {
	InitialState() S
	Mutate(ctx context.Context, action A, state S) <-chan M
	Reduce(state S, mutation M) S
}

// Superseder marks actions with latest-wins semantics: sending a new action
// with the same key cancels the in-flight mutate stream of the previous one
// and discards any mutations it still emits.
type Superseder interface {
	SupersedeKey() string
}
