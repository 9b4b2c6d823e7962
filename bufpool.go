package marc21

import "sync"

// dataPool reuses scratch buffers for assembling the data region during
// encodes. This reduces GC pressure when many records are encoded in a
// row. The final output buffer is always freshly allocated at its exact
// size, so pooled bytes never escape.
var dataPool = sync.Pool{
	New: func() any {
		// A 4KB default covers typical bibliographic records without
		// re-allocation.
		b := make([]byte, 0, 4096)
		return &b
	},
}

func getScratch() *[]byte {
	b := dataPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

func putScratch(b *[]byte) {
	dataPool.Put(b)
}
