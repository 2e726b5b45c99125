package intern

import (
	"bytes"
	"unsafe"
)

// record is the stored form of one interned string. It is never mutated
// after creation.
type record struct {
	hash uint32
	// data holds exactly the content; the byte after it, within capacity,
	// is a NUL terminator.
	data []byte
}

// newRecord takes ownership of buf, which must have room for the terminator
// at buf[:n+1].
func newRecord(hash uint32, buf []byte, n int) *record {
	buf = buf[:n+1]
	buf[n] = 0
	return &record{hash: hash, data: buf[:n]}
}

func (r *record) matches(hash uint32, b []byte) bool {
	return r.hash == hash && len(r.data) == len(b) && bytes.Equal(r.data, b)
}

// str views the content as a string without copying.
func (r *record) str() string {
	return unsafe.String(unsafe.SliceData(r.data), len(r.data))
}

// bytes returns the content with capacity clipped so appends cannot reach
// the terminator.
func (r *record) bytes() []byte {
	return r.data[:len(r.data):len(r.data)]
}

// cstr returns the content including its NUL terminator.
func (r *record) cstr() []byte {
	n := len(r.data)
	return r.data[: n+1 : n+1]
}

var recordHeaderSize = int(unsafe.Sizeof(record{}))
