package buffer

import "sync"

// Pool provides sync.Pool-based reuse of released buffer storage to reduce
// GC pressure when arrays grow and shrink repeatedly.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Get returns a buffer of exactly n zero-valued slots. Pooled storage is
// reused when its capacity suffices; otherwise a fresh buffer is allocated.
func (p *Pool[T]) Get(n int) (Buffer[T], error) {
	if n <= 0 {
		return New[T](n)
	}
	if v, ok := p.pool.Get().(*[]T); ok {
		if cap(*v) >= n {
			s := (*v)[:n]
			clear(s)
			return Buffer[T]{slots: s}, nil
		}
		p.pool.Put(v)
	}
	return New[T](n)
}

// Put releases b into the pool. b is empty afterwards.
// Putting a nil or empty buffer is a no-op.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil || b.slots == nil {
		return
	}
	s := b.slots[:cap(b.slots)]
	clear(s)
	b.slots = nil
	p.pool.Put(&s)
}
