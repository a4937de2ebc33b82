package lthash

import (
	"sync"
)

type synchronizedHash struct {
	lock sync.RWMutex
	base Hash
}

// NewSynchronizedHash creates a decorator for Hash that serializes
// calls to Add(), Remove() and SetState(). Calls to Sum() may run
// concurrently with each other, and always observe a consistent state.
func NewSynchronizedHash(base Hash) Hash {
	return &synchronizedHash{
		base: base,
	}
}

func (h *synchronizedHash) Add(element []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.base.Add(element)
}

func (h *synchronizedHash) Remove(element []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.base.Remove(element)
}

func (h *synchronizedHash) Sum(prefix []byte) []byte {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.base.Sum(prefix)
}

func (h *synchronizedHash) SetState(state []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.base.SetState(state)
}
