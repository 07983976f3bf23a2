package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{
	New: func() interface{} {
		return &buffer{}
	},
}

// Buffer returns a pooled string builder. Callers must call Free when done
// and must not use the buffer afterwards.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer)
}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}
