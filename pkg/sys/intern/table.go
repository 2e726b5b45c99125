// Package intern maps byte strings to small stable integer handles.
//
// A Table stores every distinct string once, in a chain of append-only pools.
// Handles are assigned sequentially from 1; 0 (Null) never names a string.
// Nothing is ever removed: a handle stays valid, and resolves to the same
// bytes, for the life of the Table.
//
// A Table expects a single writer at a time. WithLocking serialises writers
// with a mutex; accessors on assigned handles never lock.
package intern

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/DrSkyle/qstr/pkg/sys/unichar"
)

// Handle identifies one interned string.
type Handle uint32

// Null is the invalid handle. Find returns it on a miss.
const Null Handle = 0

// IsValid reports whether h is not Null. It does not check that any table
// assigned h.
func (h Handle) IsValid() bool {
	return h != Null
}

// Defaults for New.
const (
	DefaultPoolSize = 64
	DefaultGrowth   = 2
)

// Table is the intern table.
type Table struct {
	head    atomic.Pointer[pool]
	nStatic uint32

	// Writer state.
	mu        sync.Mutex
	locked    bool
	dataBytes int
	maxBytes  int

	hasher   Hasher
	poolSize int
	growth   int
	index    *bucketIndex
	cache    *lru.Cache[string, Handle]
	cacheCap int
	buckets  int
	statics  []string
	logger   *slog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used for pool growth events.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithPoolSize sets the capacity of the first dynamic pool.
func WithPoolSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.poolSize = n
		}
	}
}

// WithGrowth sets the factor by which each new pool outgrows the previous one.
func WithGrowth(factor int) Option {
	return func(t *Table) {
		if factor > 1 {
			t.growth = factor
		}
	}
}

// WithMaxBytes caps the total bytes of string data. Interning past the cap
// fails with ErrOutOfMemory. Zero means unlimited.
func WithMaxBytes(n int) Option {
	return func(t *Table) {
		if n >= 0 {
			t.maxBytes = n
		}
	}
}

// WithHasher replaces the default DJB2 hasher.
func WithHasher(h Hasher) Option {
	return func(t *Table) {
		if h != nil {
			t.hasher = h
		}
	}
}

// WithIndex adds a hash-bucket index in front of the pool scan.
func WithIndex(buckets int) Option {
	return func(t *Table) {
		t.buckets = buckets
	}
}

// WithFindCache keeps the most recently found strings in an LRU cache.
func WithFindCache(size int) Option {
	return func(t *Table) {
		t.cacheCap = size
	}
}

// WithLocking makes mutating calls safe to use from several goroutines.
func WithLocking() Option {
	return func(t *Table) {
		t.locked = true
	}
}

// New creates a table holding statics as handles 1..len(statics), in order.
func New(statics []string, opts ...Option) (*Table, error) {
	t := &Table{
		hasher:   DJB2,
		poolSize: DefaultPoolSize,
		growth:   DefaultGrowth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.buckets > 0 {
		t.index = newBucketIndex(t.buckets)
	}
	if t.cacheCap > 0 {
		c, err := lru.New[string, Handle](t.cacheCap)
		if err != nil {
			return nil, fmt.Errorf("intern: find cache: %w", err)
		}
		t.cache = c
	}

	// The first pool is sized exactly to the static set.
	t.head.Store(newPool(nil, len(statics)))
	for _, s := range statics {
		b := []byte(s)
		hash := t.hasher(b)
		if t.lookup(hash, b) != Null {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStatic, s)
		}
		if _, err := t.store(hash, b); err != nil {
			return nil, err
		}
	}
	t.nStatic = uint32(len(statics))
	t.statics = append([]string(nil), statics...)

	t.logger.Debug("intern table ready", "statics", len(statics), "pool_size", t.poolSize, "indexed", t.index != nil)
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(statics []string, opts ...Option) *Table {
	t, err := New(statics, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Find returns the handle of b, or Null if b was never interned.
func (t *Table) Find(b []byte) Handle {
	if t.locked && t.index != nil {
		// The bucket slices are appended to by writers.
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	return t.lookup(t.hasher(b), b)
}

// FindString is Find for a string.
func (t *Table) FindString(s string) Handle {
	return t.Find([]byte(s))
}

// Intern returns the handle of b, storing a copy of b first if it is new.
func (t *Table) Intern(b []byte) (Handle, error) {
	if t.locked {
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	hash := t.hasher(b)
	if h := t.lookup(hash, b); h != Null {
		return h, nil
	}
	return t.store(hash, b)
}

// InternString is Intern for a string.
func (t *Table) InternString(s string) (Handle, error) {
	return t.Intern([]byte(s))
}

// MustIntern is like Intern but panics on error.
func (t *Table) MustIntern(s string) Handle {
	h, err := t.Intern([]byte(s))
	if err != nil {
		panic(err)
	}
	return h
}

// lookup scans for (hash, b). Callers hold the writer role or accept a
// lock-free read of published pools.
func (t *Table) lookup(hash uint32, b []byte) Handle {
	if t.cache != nil {
		if h, ok := t.cache.Get(string(b)); ok {
			return h
		}
	}

	var h Handle
	if t.index != nil {
		h = t.index.find(t, hash, b)
	} else {
		h = t.scan(hash, b)
	}

	if h != Null && t.cache != nil {
		t.cache.Add(string(b), h)
	}
	return h
}

// scan walks the chain from the head back to the first pool.
func (t *Table) scan(hash uint32, b []byte) Handle {
	for p := t.head.Load(); p != nil; p = p.prev {
		n := p.len()
		for i := n; i > 0; i-- {
			if p.records[i-1].matches(hash, b) {
				return Handle(p.totalPrevLen + i)
			}
		}
	}
	return Null
}

// store copies b into a new record.
func (t *Table) store(hash uint32, b []byte) (Handle, error) {
	if err := t.reserve(len(b)); err != nil {
		return Null, err
	}
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return t.add(newRecord(hash, buf, len(b))), nil
}

func (t *Table) reserve(n int) error {
	if t.maxBytes > 0 && t.dataBytes+n > t.maxBytes {
		return fmt.Errorf("%w: %d more bytes would exceed the %d byte budget (%d in use)",
			ErrOutOfMemory, n, t.maxBytes, t.dataBytes)
	}
	return nil
}

// add appends r to the head pool, growing the chain first if it is full.
func (t *Table) add(r *record) Handle {
	head := t.head.Load()
	if head.full() {
		head = t.grow(head)
	}
	h := head.push(r)
	t.dataBytes += len(r.data)
	if t.index != nil {
		t.index.add(r.hash, h)
	}
	return h
}

func (t *Table) grow(head *pool) *pool {
	alloc := head.alloc() * t.growth
	if alloc < t.poolSize {
		alloc = t.poolSize
	}
	p := newPool(head, alloc)
	t.head.Store(p)
	t.logger.Debug("intern pool added", "alloc", alloc, "total_prev_len", p.totalPrevLen)
	return p
}

// record resolves h, returning nil when no record exists.
func (t *Table) record(h Handle) *record {
	if h == Null {
		return nil
	}
	return t.head.Load().get(uint32(h) - 1)
}

func (t *Table) mustRecord(h Handle) *record {
	r := t.record(h)
	if r == nil {
		panic(&InvalidHandleError{Handle: h, Count: t.Count()})
	}
	return r
}

// Count returns the number of strings in the table, statics included.
// The highest assigned handle equals Count.
func (t *Table) Count() uint32 {
	head := t.head.Load()
	return head.totalPrevLen + head.len()
}

// StaticCount returns the number of static strings.
func (t *Table) StaticCount() uint32 {
	return t.nStatic
}

// Statics returns the static set the table was built from.
func (t *Table) Statics() []string {
	return append([]string(nil), t.statics...)
}

// IsStatic reports whether h names a static string.
func (t *Table) IsStatic(h Handle) bool {
	return h != Null && uint32(h) <= t.nStatic
}

// Contains reports whether h was assigned by t.
func (t *Table) Contains(h Handle) bool {
	return h != Null && uint32(h) <= t.Count()
}

// Lookup returns the bytes of h and whether h is assigned.
func (t *Table) Lookup(h Handle) ([]byte, bool) {
	r := t.record(h)
	if r == nil {
		return nil, false
	}
	return r.bytes(), true
}

// The accessors below panic with an *InvalidHandleError when h is Null or
// unassigned. Returned byte slices must not be modified.

// Str returns the content of h.
func (t *Table) Str(h Handle) string {
	return t.mustRecord(h).str()
}

// Len returns the byte length of h.
func (t *Table) Len(h Handle) int {
	return len(t.mustRecord(h).data)
}

// Data returns the content of h.
func (t *Table) Data(h Handle) []byte {
	return t.mustRecord(h).bytes()
}

// CStr returns the content of h followed by a NUL byte.
func (t *Table) CStr(h Handle) []byte {
	return t.mustRecord(h).cstr()
}

// Hash returns the stored hash of h.
func (t *Table) Hash(h Handle) uint32 {
	return t.mustRecord(h).hash
}

// CharLen returns the number of code points in h.
func (t *Table) CharLen(h Handle) int {
	return unichar.CharLen(t.mustRecord(h).data)
}
