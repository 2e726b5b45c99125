package intern

import "fmt"

// Builder is a scratch buffer for a string assembled piece by piece.
//
// A Builder is owned by its caller until it is handed to EndBuild, which
// either moves its bytes into the table or drops them in favour of an
// existing equal string. After that, or after Discard, it is inert.
type Builder struct {
	t    *Table
	buf  []byte // len = bytes written, cap = max+1
	max  int
	done bool
	// exposed is set once the caller holds a slice into buf.
	exposed bool
}

// BeginBuild allocates a builder for at most maxLen bytes.
func (t *Table) BeginBuild(maxLen int) *Builder {
	if maxLen < 0 {
		maxLen = 0
	}
	return &Builder{
		t:   t,
		buf: make([]byte, 0, maxLen+1),
		max: maxLen,
	}
}

// Write appends p. Bytes past the capacity are dropped and ErrBuildOverflow
// is returned.
func (b *Builder) Write(p []byte) (int, error) {
	if b.done {
		return 0, ErrBuilderConsumed
	}
	room := b.max - len(b.buf)
	if len(p) > room {
		b.buf = append(b.buf, p[:room]...)
		return room, fmt.Errorf("%w: %d of %d bytes written", ErrBuildOverflow, room, len(p))
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	if b.done {
		return 0, ErrBuilderConsumed
	}
	room := b.max - len(b.buf)
	if len(s) > room {
		b.buf = append(b.buf, s[:room]...)
		return room, fmt.Errorf("%w: %d of %d bytes written", ErrBuildOverflow, room, len(s))
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends c.
func (b *Builder) WriteByte(c byte) error {
	if b.done {
		return ErrBuilderConsumed
	}
	if len(b.buf) == b.max {
		return ErrBuildOverflow
	}
	b.buf = append(b.buf, c)
	return nil
}

// Buf exposes the full capacity for direct writes. Call SetLen afterwards
// to mark how many bytes are content.
func (b *Builder) Buf() []byte {
	if b.done {
		return nil
	}
	b.exposed = true
	return b.buf[:b.max]
}

// SetLen sets the content length after direct writes into Buf.
func (b *Builder) SetLen(n int) {
	if b.done {
		panic(ErrBuilderConsumed)
	}
	if n < 0 || n > b.max {
		panic(fmt.Errorf("%w: length %d, capacity %d", ErrBuildOverflow, n, b.max))
	}
	b.buf = b.buf[:n]
}

// Len returns the number of content bytes.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the maximum content length.
func (b *Builder) Cap() int { return b.max }

// Bytes returns the content written so far.
func (b *Builder) Bytes() []byte {
	b.exposed = true
	return b.buf
}

// Done reports whether the builder was consumed or discarded.
func (b *Builder) Done() bool { return b.done }

// Discard releases the buffer without interning it.
func (b *Builder) Discard() {
	b.done = true
	b.buf = nil
}

// Commit is EndBuild on the builder's own table.
func (b *Builder) Commit() (Handle, error) {
	return b.t.EndBuild(b)
}

// take consumes the builder, returning its content and whether the caller
// may still hold a slice of it.
func (b *Builder) take() ([]byte, bool, error) {
	if b.done {
		return nil, false, ErrBuilderConsumed
	}
	buf := b.buf
	b.done = true
	b.buf = nil
	return buf, b.exposed, nil
}

// EndBuild interns the builder's content and consumes the builder.
//
// If an equal string exists its handle is returned and the scratch buffer is
// released. Otherwise the buffer itself becomes the stored record, unless it
// is much larger than its content or was handed out by Buf or Bytes, in which
// case it is copied.
func (t *Table) EndBuild(b *Builder) (Handle, error) {
	if b.t != t {
		return Null, fmt.Errorf("%w: builder belongs to another table", ErrBuilderConsumed)
	}
	buf, exposed, err := b.take()
	if err != nil {
		return Null, err
	}

	if t.locked {
		t.mu.Lock()
		defer t.mu.Unlock()
	}

	n := len(buf)
	hash := t.hasher(buf)
	if h := t.lookup(hash, buf); h != Null {
		return h, nil
	}
	if err := t.reserve(n); err != nil {
		return Null, err
	}

	if slack := cap(buf) - (n + 1); exposed || slack > n/4+8 {
		owned := make([]byte, n+1)
		copy(owned, buf)
		buf = owned
	}
	return t.add(newRecord(hash, buf, n)), nil
}
