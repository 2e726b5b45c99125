package intern

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestBuilderEquivalence(t *testing.T) {
	tbl := MustNew([]string{"print"})
	want := tbl.MustIntern("obj_42")

	b := tbl.BeginBuild(16)
	fmt.Fprintf(b, "obj_%d", 42)
	h, err := tbl.EndBuild(b)
	require.NoError(t, err)
	require.Equal(t, want, h)
	require.Equal(t, uint32(2), tbl.Count(), "no duplicate record may be created")

	b = tbl.BeginBuild(5)
	_, _ = b.WriteString("pri")
	_ = b.WriteByte('n')
	_ = b.WriteByte('t')
	h, err = b.Commit()
	require.NoError(t, err)
	require.Equal(t, Handle(1), h)
}

func TestBuilderNewString(t *testing.T) {
	tbl := MustNew(nil)

	b := tbl.BeginBuild(8)
	_, err := b.Write([]byte("fresh"))
	require.NoError(t, err)
	scratch := unsafe.SliceData(b.buf)

	h, err := tbl.EndBuild(b)
	require.NoError(t, err)
	require.Equal(t, Handle(1), h)
	require.Equal(t, "fresh", tbl.Str(h))
	require.Equal(t, []byte("fresh\x00"), tbl.CStr(h))

	// Small slack: the scratch buffer itself becomes the record.
	require.True(t, scratch == unsafe.SliceData(tbl.Data(h)))
	require.Equal(t, h, tbl.FindString("fresh"))
}

func TestBuilderShrinksOversizedScratch(t *testing.T) {
	tbl := MustNew(nil)

	b := tbl.BeginBuild(4096)
	_, _ = b.WriteString("tiny")
	h, err := b.Commit()
	require.NoError(t, err)
	require.Equal(t, 5, cap(tbl.CStr(h)))
}

func TestBuilderDirectWrites(t *testing.T) {
	tbl := MustNew(nil)

	b := tbl.BeginBuild(6)
	buf := b.Buf()
	require.Len(t, buf, 6)
	n := copy(buf, "abc")
	b.SetLen(n)
	require.Equal(t, "abc", string(b.Bytes()))

	h, err := b.Commit()
	require.NoError(t, err)
	require.Equal(t, "abc", tbl.Str(h))

	require.Panics(t, func() { tbl.BeginBuild(2).SetLen(3) })
}

func TestBuilderRetainedBufferCannotMutateRecord(t *testing.T) {
	tbl := MustNew(nil)

	b := tbl.BeginBuild(4)
	buf := b.Buf()
	b.SetLen(copy(buf, "abcd"))
	h, err := b.Commit()
	require.NoError(t, err)

	buf[0] = 'X'
	require.Equal(t, "abcd", tbl.Str(h))
	require.Equal(t, h, tbl.FindString("abcd"))
	require.Equal(t, Null, tbl.FindString("Xbcd"))

	b = tbl.BeginBuild(4)
	_, _ = b.WriteString("wxyz")
	view := b.Bytes()
	h, err = b.Commit()
	require.NoError(t, err)

	view[3] = '!'
	require.Equal(t, "wxyz", tbl.Str(h))
	require.Equal(t, h, tbl.FindString("wxyz"))
}

func TestBuilderOverflow(t *testing.T) {
	tbl := MustNew(nil)
	b := tbl.BeginBuild(3)

	n, err := b.WriteString("abcdef")
	require.ErrorIs(t, err, ErrBuildOverflow)
	require.Equal(t, 3, n)
	require.ErrorIs(t, b.WriteByte('x'), ErrBuildOverflow)

	h, err := b.Commit()
	require.NoError(t, err)
	require.Equal(t, "abc", tbl.Str(h))
}

func TestBuilderConsumedOnce(t *testing.T) {
	tbl := MustNew(nil)

	b := tbl.BeginBuild(4)
	_, _ = b.WriteString("once")
	_, err := tbl.EndBuild(b)
	require.NoError(t, err)
	require.True(t, b.Done())

	_, err = tbl.EndBuild(b)
	require.ErrorIs(t, err, ErrBuilderConsumed)
	_, err = b.WriteString("again")
	require.ErrorIs(t, err, ErrBuilderConsumed)
	require.Nil(t, b.Buf())

	d := tbl.BeginBuild(4)
	_, _ = d.WriteString("gone")
	d.Discard()
	_, err = d.Commit()
	require.ErrorIs(t, err, ErrBuilderConsumed)
	require.Equal(t, Null, tbl.FindString("gone"))
}

func TestBuilderForeignTable(t *testing.T) {
	a := MustNew(nil)
	other := MustNew(nil)

	b := a.BeginBuild(3)
	_, _ = b.WriteString("abc")
	_, err := other.EndBuild(b)
	require.ErrorIs(t, err, ErrBuilderConsumed)
	require.False(t, b.Done(), "a rejected builder stays usable on its own table")

	h, err := b.Commit()
	require.NoError(t, err)
	require.Equal(t, "abc", a.Str(h))
}

func TestBuilderOutOfMemory(t *testing.T) {
	tbl := MustNew(nil, WithMaxBytes(3))
	b := tbl.BeginBuild(8)
	_, _ = b.WriteString("toolong")
	_, err := b.Commit()
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.True(t, b.Done())
}
