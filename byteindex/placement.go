package byteindex

import (
	"github.com/valyala/bytebufferpool"
)

// buffers holds the working memory for one Index run: the input block buffer
// and the output record buffer. Small working sets come from a single
// throwaway slab that the runtime reclaims when the run ends; working sets
// larger than the scratch budget (or any working set when the budget cannot
// be determined) come from a shared pool and must be released exactly once,
// on every exit path. Behavior is identical either way; only the allocation
// lifetime differs.
type buffers struct {
	in  []byte // len == block size
	out []byte // len 0, cap == record capacity in bytes

	pooledIn  *bytebufferpool.ByteBuffer
	pooledOut *bytebufferpool.ByteBuffer
}

func acquireBuffers(blockSize, outSize int) *buffers {
	if fitsScratchBudget(uint64(blockSize) + uint64(outSize)) {
		return newSlabBuffers(blockSize, outSize)
	}
	return newPooledBuffers(blockSize, outSize)
}

func newSlabBuffers(blockSize, outSize int) *buffers {
	slab := make([]byte, blockSize+outSize)
	return &buffers{
		in:  slab[:blockSize],
		out: slab[blockSize : blockSize : blockSize+outSize],
	}
}

func newPooledBuffers(blockSize, outSize int) *buffers {
	pooledIn := bytebufferpool.Get()
	pooledOut := bytebufferpool.Get()
	return &buffers{
		in: growTo(pooledIn, blockSize),
		// The writer flushes when the output buffer hits its capacity, so
		// the capacity must be exactly outSize even if the pool handed back
		// a larger buffer.
		out:       growTo(pooledOut, outSize)[0:0:outSize],
		pooledIn:  pooledIn,
		pooledOut: pooledOut,
	}
}

// release returns pooled buffers to the pool. Throwaway slabs need no
// explicit release. Safe to call exactly once per acquire.
func (b *buffers) release() {
	if b.pooledIn != nil {
		bytebufferpool.Put(b.pooledIn)
		b.pooledIn = nil
	}
	if b.pooledOut != nil {
		bytebufferpool.Put(b.pooledOut)
		b.pooledOut = nil
	}
}

func growTo(bb *bytebufferpool.ByteBuffer, n int) []byte {
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	}
	bb.B = bb.B[:n]
	return bb.B
}

// fitsScratchBudget reports whether a working set of the given size fits
// within 90% of the scratch budget. An undeterminable budget counts as not
// fitting.
func fitsScratchBudget(required uint64) bool {
	budget, err := scratchBudget()
	if err != nil {
		return false
	}
	return required <= budget/10*9
}
