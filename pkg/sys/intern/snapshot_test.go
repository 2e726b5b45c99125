package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore(t *testing.T) {
	statics := []string{"self", "cls"}
	src := MustNew(statics, WithPoolSize(2))
	words := []string{"x", "y", "\xff\x00raw", "zeta", "x"}
	var handles []Handle
	for _, w := range words {
		handles = append(handles, src.MustIntern(w))
	}

	raw, err := MarshalSnapshot(src.Snapshot())
	require.NoError(t, err)

	snap, err := UnmarshalSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, snap.Strings, 4)

	dst := MustNew(statics)
	require.NoError(t, dst.Restore(snap))
	for i, w := range words {
		require.Equal(t, handles[i], dst.FindString(w), "handle of %q", w)
	}
}

func TestSnapshotMismatch(t *testing.T) {
	src := MustNew([]string{"a"})
	src.MustIntern("dyn")
	snap := src.Snapshot()

	err := MustNew([]string{"b"}).Restore(snap)
	require.ErrorIs(t, err, ErrSnapshotMismatch)

	busy := MustNew([]string{"a"})
	busy.MustIntern("other")
	require.ErrorIs(t, busy.Restore(snap), ErrSnapshotMismatch)
	require.Equal(t, uint32(2), busy.Count())
	require.Equal(t, Null, busy.FindString("dyn"))

	snap.Version = 99
	require.ErrorIs(t, MustNew([]string{"a"}).Restore(snap), ErrSnapshotMismatch)

	_, err = UnmarshalSnapshot([]byte("{"))
	require.Error(t, err)
}

func TestRestoreRejectsWithoutInterning(t *testing.T) {
	statics := []string{"a"}

	dup := Snapshot{Version: SnapshotVersion, Statics: 1, Fingerprint: Fingerprint(statics),
		Strings: [][]byte{[]byte("x"), []byte("y"), []byte("x")}}
	tbl := MustNew(statics)
	require.ErrorIs(t, tbl.Restore(dup), ErrSnapshotMismatch)
	require.Equal(t, uint32(1), tbl.Count())

	static := dup
	static.Strings = [][]byte{[]byte("x"), []byte("a")}
	require.ErrorIs(t, tbl.Restore(static), ErrSnapshotMismatch)
	require.Equal(t, Null, tbl.FindString("x"))

	big := dup
	big.Strings = [][]byte{[]byte("xx"), []byte("yy")}
	small := MustNew(statics, WithMaxBytes(4))
	require.ErrorIs(t, small.Restore(big), ErrOutOfMemory)
	require.Equal(t, uint32(1), small.Count())
}
