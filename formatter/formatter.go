package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/pinelog/core"
)

// Config holds formatter configuration
type Config struct {
	// Timestamp selects the timestamp rendering (default: none)
	Timestamp core.TimestampFormat
	// Styles renders the decorated console level (default: NewStyles(nil, ColorNever))
	Styles *Styles
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
