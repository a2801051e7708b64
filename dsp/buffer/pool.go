package buffer

import "sync"

// Pool recycles Buffers between calls. It is safe for concurrent use.
type Pool[T Sample] struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool[T Sample]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return &Buffer[T]{} },
		},
	}
}

// Get returns a zeroed Buffer of n samples. Hand it back with Put, or use
// Borrow for scoped access.
func (p *Pool[T]) Get(n int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Reset(n)
	return b
}

// Put recycles b. b must not be used afterwards. A nil b is ignored.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b != nil {
		p.pool.Put(b)
	}
}
