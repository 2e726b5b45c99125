package intern

import (
	"fmt"
	"io"
	"iter"
)

// Info summarises the memory held by a table.
type Info struct {
	Pools         int `json:"pools" yaml:"pools"`
	Strings       int `json:"strings" yaml:"strings"`
	StaticStrings int `json:"static_strings" yaml:"static_strings"`
	// StrDataBytes is the content bytes of every string.
	StrDataBytes int `json:"str_data_bytes" yaml:"str_data_bytes"`
	// OverheadBytes covers pool headers, pool slot arrays, record headers
	// and terminators.
	OverheadBytes int `json:"overhead_bytes" yaml:"overhead_bytes"`
	TotalBytes    int `json:"total_bytes" yaml:"total_bytes"`
	// Capacity is the number of slots across all pools.
	Capacity int `json:"capacity" yaml:"capacity"`
}

// Info walks the pool chain and reports its size.
func (t *Table) Info() Info {
	var info Info
	for p := t.head.Load(); p != nil; p = p.prev {
		n := int(p.len())
		info.Pools++
		info.Strings += n
		info.Capacity += p.alloc()
		info.OverheadBytes += p.overhead()
		for _, r := range p.records[:n] {
			info.StrDataBytes += len(r.data)
			info.OverheadBytes += recordHeaderSize + 1
		}
	}
	info.StaticStrings = int(t.nStatic)
	info.TotalBytes = info.StrDataBytes + info.OverheadBytes
	return info
}

// IndexStats describes the hash-bucket index, if enabled.
type IndexStats struct {
	Buckets int
	Longest int
	Empty   int
}

// IndexStats reports bucket occupancy. ok is false when the table has no
// index.
func (t *Table) IndexStats() (stats IndexStats, ok bool) {
	if t.index == nil {
		return IndexStats{}, false
	}
	if t.locked {
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	longest, empty := t.index.load()
	return IndexStats{Buckets: len(t.index.buckets), Longest: longest, Empty: empty}, true
}

// All yields every handle and its content in handle order.
func (t *Table) All() iter.Seq2[Handle, []byte] {
	return func(yield func(Handle, []byte) bool) {
		for _, p := range t.head.Load().chain() {
			n := p.len()
			for i := uint32(0); i < n; i++ {
				if !yield(Handle(p.totalPrevLen+i+1), p.records[i].bytes()) {
					return
				}
			}
		}
	}
}

// Roots yields the content of every stored string. Interned data is never
// freed, so a collector scanning the runtime must treat all of it as live.
func (t *Table) Roots() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, b := range t.All() {
			if !yield(b) {
				return
			}
		}
	}
}

// Entry is one row of a table dump.
type Entry struct {
	Handle Handle `json:"handle" yaml:"handle"`
	Len    int    `json:"len" yaml:"len"`
	Hash   uint32 `json:"hash" yaml:"hash"`
	Static bool   `json:"static" yaml:"static"`
	Str    string `json:"str" yaml:"str"`
}

// Entries lists every string in handle order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Count())
	for h := range t.All() {
		r := t.mustRecord(h)
		out = append(out, Entry{
			Handle: h,
			Len:    len(r.data),
			Hash:   r.hash,
			Static: t.IsStatic(h),
			Str:    string(r.data),
		})
	}
	return out
}

// Dump writes one line per string: handle, length, hash and Q(content).
func (t *Table) Dump(w io.Writer) error {
	for h, b := range t.All() {
		if _, err := fmt.Fprintf(w, "%5d %4d %08x Q(%s)\n", h, len(b), t.Hash(h), b); err != nil {
			return err
		}
	}
	return nil
}
