package pool

import "sync"

// BufferPool recycles byte slices between normalization passes. Newsletter
// pages are small, so a single fixed capacity fits nearly every input and the
// optimized normalizer never reallocates on the hot path.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool returns a pool whose buffers start with the given capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get hands out a zero-length buffer, reusing a pooled one when available.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put truncates the buffer and returns it to the pool; capacity is kept.
func (bp *BufferPool) Put(buffer *[]byte) {
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}
