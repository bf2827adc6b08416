package smashout

// Pooled is implemented by every entity stored in a Pool.
type Pooled interface {
	IsActive() bool
}

// Pool is a fixed-capacity arena of entity slots. A slot is free when its
// entity reports inactive; spawning scans for the first free slot, so the
// cost is O(capacity) and at most capacity entities are ever live.
type Pool[T Pooled] struct {
	slots []T
}

// NewPool creates a pool with the given number of slots.
func NewPool[T Pooled](capacity int) Pool[T] {
	return Pool[T]{slots: make([]T, capacity)}
}

// Spawn stores v in the first inactive slot. When every slot is taken the
// request is dropped and ok is false.
func (p *Pool[T]) Spawn(v T) (slot *T, ok bool) {
	for i := range p.slots {
		if !p.slots[i].IsActive() {
			p.slots[i] = v
			return &p.slots[i], true
		}
	}
	return nil, false
}

// Each calls fn for every active slot in index order.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.slots {
		if p.slots[i].IsActive() {
			fn(i, &p.slots[i])
		}
	}
}

// First returns the lowest-index active entity.
func (p *Pool[T]) First() (*T, bool) {
	for i := range p.slots {
		if p.slots[i].IsActive() {
			return &p.slots[i], true
		}
	}
	return nil, false
}

// ActiveCount returns the number of active slots.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].IsActive() {
			n++
		}
	}
	return n
}

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Clear frees every slot.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.slots {
		p.slots[i] = zero
	}
}
