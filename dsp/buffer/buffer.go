package buffer

// Sample is the set of element types a Buffer can hold: int16 PCM and
// float64 scratch.
type Sample interface {
	~int16 | ~float64
}

// Buffer is a growable block of samples whose backing array is kept across
// Reset calls.
type Buffer[T Sample] struct {
	data []T
}

// New returns a zero-filled Buffer of n samples. A negative n yields an
// empty buffer.
func New[T Sample](n int) *Buffer[T] {
	b := &Buffer[T]{}
	b.Reset(n)
	return b
}

// Samples returns the current contents.
func (b *Buffer[T]) Samples() []T { return b.data }

// Len returns the number of samples.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Reset sets the length to n and zeroes all n samples, reallocating only
// when the backing array is too small.
func (b *Buffer[T]) Reset(n int) {
	n = max(n, 0)
	if n > cap(b.data) {
		b.data = make([]T, n)
		return
	}
	b.data = b.data[:n]
	clear(b.data)
}
