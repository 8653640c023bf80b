package index

import "sync/atomic"

// Holder publishes the current index to concurrent readers. A rebuild
// constructs a fresh Index and swaps the pointer atomically; the old index
// keeps serving in-flight searches until they finish.
type Holder struct {
	current atomic.Pointer[Index]
}

func NewHolder(idx *Index) *Holder {
	h := &Holder{}
	h.current.Store(idx)
	return h
}

func (h *Holder) Load() *Index {
	return h.current.Load()
}

func (h *Holder) Swap(idx *Index) {
	h.current.Store(idx)
}
