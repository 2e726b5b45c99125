package intern

import (
	"sync/atomic"
	"unsafe"
)

// pool is one fixed-capacity, append-only segment of the handle chain.
//
// records is allocated once at full capacity and never re-sliced past it, so
// a stored *record never moves. The fill count is published atomically after
// the slot is written, which lets readers walk the chain without a lock.
type pool struct {
	prev         *pool
	totalPrevLen uint32
	records      []*record
	n            atomic.Uint32
}

func newPool(prev *pool, alloc int) *pool {
	p := &pool{
		prev:    prev,
		records: make([]*record, alloc),
	}
	if prev != nil {
		p.totalPrevLen = prev.totalPrevLen + prev.n.Load()
	}
	return p
}

func (p *pool) alloc() int {
	return len(p.records)
}

func (p *pool) len() uint32 {
	return p.n.Load()
}

func (p *pool) full() bool {
	return int(p.n.Load()) == len(p.records)
}

// push stores r in the next free slot and returns its handle.
// The caller guarantees the pool is not full and holds the writer role.
func (p *pool) push(r *record) Handle {
	i := p.n.Load()
	p.records[i] = r
	p.n.Store(i + 1)
	// Handles are 1-based: global index i maps to handle i+1.
	return Handle(p.totalPrevLen + i + 1)
}

// get returns the record at global index idx, or nil if the chain starting
// at p does not hold it.
func (p *pool) get(idx uint32) *record {
	for ; p != nil; p = p.prev {
		if idx >= p.totalPrevLen {
			local := idx - p.totalPrevLen
			if local < p.n.Load() {
				return p.records[local]
			}
			return nil
		}
	}
	return nil
}

// chain returns the pools from the earliest to p.
func (p *pool) chain() []*pool {
	var out []*pool
	for ; p != nil; p = p.prev {
		out = append(out, p)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

var (
	poolHeaderSize = int(unsafe.Sizeof(pool{}))
	slotSize       = int(unsafe.Sizeof((*record)(nil)))
)

func (p *pool) overhead() int {
	return poolHeaderSize + p.alloc()*slotSize
}
