package reactor

import "sync/atomic"

// Pulse holds a value that is consumed at most once. State snapshots are
// copied on every reduce, so copies share one underlying slot: taking the
// value through any copy clears it everywhere. Used for one-shot error
// signaling so a re-render never re-triggers UI action.
type Pulse[T any] struct {
	slot *atomic.Pointer[T]
}

// NewPulse returns a pulse armed with v.
func NewPulse[T any](v T) Pulse[T] {
	var slot atomic.Pointer[T]
	slot.Store(&v)
	return Pulse[T]{slot: &slot}
}

// Take returns the value and disarms the pulse. The second and later calls,
// through this or any copy, report ok == false. The zero Pulse is empty.
func (p Pulse[T]) Take() (T, bool) {
	var zero T
	if p.slot == nil {
		return zero, false
	}
	v := p.slot.Swap(nil)
	if v == nil {
		return zero, false
	}
	return *v, true
}
