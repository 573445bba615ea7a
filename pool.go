package swift

import (
	"strings"
	"sync"
)

// builderPool recycles string builders across encodes. Message
// assembly is allocation-heavy enough under batch load that reusing
// the buffers is worth the indirection.
var builderPool = newBufferPool()

type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				return &strings.Builder{}
			},
		},
	}
}

func (p *bufferPool) Get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

func (p *bufferPool) Put(b *strings.Builder) {
	// Builders that grew past 64KiB are dropped rather than pinned in
	// the pool.
	if b.Cap() > 64*1024 {
		return
	}
	b.Reset()
	p.pool.Put(b)
}
