package pixbuf

import "sync"

// samplePool reuses sample slices between buffers. Slices that are too
// small for a request are dropped and a fresh one is allocated.
var samplePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

func getSamples(n int) []byte {
	p := samplePool.Get().(*[]byte)
	if cap(*p) < n {
		samplePool.Put(p)
		return make([]byte, n)
	}
	s := (*p)[:n]
	clear(s)
	return s
}

func putSamples(s []byte) {
	if s == nil {
		return
	}
	s = s[:0]
	samplePool.Put(&s)
}
