package buffer

// View is a zeroed buffer borrowed from a Pool for the duration of one call.
// It must not be retained after Release.
type View[T Sample] struct {
	pool *Pool[T]
	buf  *Buffer[T]
}

// Borrow acquires a view of n samples from p.
func Borrow[T Sample](p *Pool[T], n int) *View[T] {
	return &View[T]{pool: p, buf: p.Get(n)}
}

// Samples returns the borrowed slice, or nil once the view is released.
func (v *View[T]) Samples() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Samples()
}

// Released reports whether Release has been called.
func (v *View[T]) Released() bool {
	return v.buf == nil
}

// Release hands the memory back to the pool. It is safe to call more than once.
func (v *View[T]) Release() {
	if v.buf == nil {
		return
	}
	v.pool.Put(v.buf)
	v.buf = nil
}
