package intern

import (
	"sync"
	"sync/atomic"
)

var (
	initMu sync.Mutex
	global atomic.Pointer[Table]
)

// Init creates the process-wide table. It must run once, before any of the
// package-level functions; a second call panics with ErrAlreadyInitialized.
func Init(statics []string, opts ...Option) *Table {
	initMu.Lock()
	defer initMu.Unlock()

	if global.Load() != nil {
		panic(ErrAlreadyInitialized)
	}
	t := MustNew(statics, opts...)
	global.Store(t)
	return t
}

// Default returns the process-wide table.
func Default() *Table {
	t := global.Load()
	if t == nil {
		panic(ErrNotInitialized)
	}
	return t
}

// Initialized reports whether Init has run.
func Initialized() bool {
	return global.Load() != nil
}

// Intern interns b in the default table.
func Intern(b []byte) (Handle, error) { return Default().Intern(b) }

// InternString interns s in the default table.
func InternString(s string) (Handle, error) { return Default().InternString(s) }

// Find looks b up in the default table.
func Find(b []byte) Handle { return Default().Find(b) }

// Str returns the content of h from the default table.
func Str(h Handle) string { return Default().Str(h) }

// Len returns the byte length of h from the default table.
func Len(h Handle) int { return Default().Len(h) }

// Data returns the content of h from the default table.
func Data(h Handle) []byte { return Default().Data(h) }

// HashOf returns the stored hash of h from the default table.
func HashOf(h Handle) uint32 { return Default().Hash(h) }

// BeginBuild starts a builder on the default table.
func BeginBuild(maxLen int) *Builder { return Default().BeginBuild(maxLen) }

// EndBuild finishes b on the default table.
func EndBuild(b *Builder) (Handle, error) { return Default().EndBuild(b) }
