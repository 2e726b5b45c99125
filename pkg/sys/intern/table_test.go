package intern

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticHandlesAndScenario(t *testing.T) {
	tbl, err := New([]string{"foo", "bar"})
	require.NoError(t, err)

	if h := tbl.FindString("foo"); h != 1 {
		t.Errorf("Expected foo to be handle 1, got %d", h)
	}
	if h := tbl.FindString("bar"); h != 2 {
		t.Errorf("Expected bar to be handle 2, got %d", h)
	}

	if h := tbl.MustIntern("baz"); h != 3 {
		t.Errorf("Expected baz to be handle 3, got %d", h)
	}
	if h := tbl.MustIntern("foo"); h != 1 {
		t.Errorf("Expected re-interning foo to return 1, got %d", h)
	}
	if h := tbl.FindString("qux"); h != Null {
		t.Errorf("Expected find of qux to miss, got %d", h)
	}

	if !tbl.IsStatic(2) || tbl.IsStatic(3) || tbl.IsStatic(Null) {
		t.Error("IsStatic does not follow the static range")
	}
	if tbl.StaticCount() != 2 || tbl.Count() != 3 {
		t.Errorf("Expected 2 statics and 3 strings, got %d and %d", tbl.StaticCount(), tbl.Count())
	}
}

func TestUniquenessAndDistinctness(t *testing.T) {
	tbl := MustNew(nil)

	words := []string{"alpha", "beta", "gamma", "alpha", "", "beta", "Alpha", "alph", "alphaa", ""}
	seen := map[string]Handle{}
	for _, w := range words {
		// Fresh slice each time so equality is by content, not identity.
		h, err := tbl.Intern([]byte(w))
		require.NoError(t, err)
		require.NotEqual(t, Null, h)

		if prev, ok := seen[w]; ok && prev != h {
			t.Errorf("%q interned as %d and %d", w, prev, h)
		}
		seen[w] = h
	}

	byHandle := map[Handle]string{}
	for w, h := range seen {
		if other, ok := byHandle[h]; ok {
			t.Errorf("%q and %q share handle %d", w, other, h)
		}
		byHandle[h] = w
	}
	require.Equal(t, uint32(len(seen)), tbl.Count())
}

func TestStabilityAcrossPoolGrowth(t *testing.T) {
	tbl := MustNew([]string{"static"}, WithPoolSize(4))

	handles := make([]Handle, 0, 500)
	for i := range 500 {
		handles = append(handles, tbl.MustIntern(fmt.Sprintf("sym_%d", i)))
	}

	for i, h := range handles {
		want := fmt.Sprintf("sym_%d", i)
		if got := tbl.Str(h); got != want {
			t.Fatalf("handle %d resolved to %q, want %q", h, got, want)
		}
		if h != Handle(i+2) {
			t.Fatalf("Expected sequential handle %d, got %d", i+2, h)
		}
	}

	if info := tbl.Info(); info.Pools < 3 {
		t.Errorf("Expected the chain to have grown, got %d pools", info.Pools)
	}
}

func TestPoolChainThresholds(t *testing.T) {
	tbl := MustNew([]string{"a", "b", "c"}, WithPoolSize(2), WithGrowth(3))
	for i := range 40 {
		tbl.MustIntern(fmt.Sprintf("%d", i))
	}

	pools := tbl.head.Load().chain()
	var sum uint32
	for i, p := range pools {
		if p.totalPrevLen != sum {
			t.Errorf("pool %d: totalPrevLen %d, want %d", i, p.totalPrevLen, sum)
		}
		for _, r := range p.records[:p.len()] {
			if r == nil {
				t.Errorf("pool %d holds an empty slot below its fill count", i)
			}
		}
		sum += p.len()
	}
	require.Equal(t, tbl.Count(), sum)

	// Static pool is sized exactly; each later pool is 3x the previous one
	// since that already exceeds the pool size floor.
	if pools[0].alloc() != 3 || pools[1].alloc() != 9 || pools[2].alloc() != 27 {
		t.Errorf("unexpected pool capacities %d, %d, %d", pools[0].alloc(), pools[1].alloc(), pools[2].alloc())
	}
}

func TestRoundTripAccessors(t *testing.T) {
	tbl := MustNew(nil)
	input := []byte("héllo")
	h, err := tbl.Intern(input)
	require.NoError(t, err)

	input[0] = 'J' // the table must hold its own copy

	if got := tbl.Str(h); got != "héllo" {
		t.Errorf("Str = %q", got)
	}
	if got := tbl.Len(h); got != 6 {
		t.Errorf("Len = %d, want 6", got)
	}
	if got := tbl.CharLen(h); got != 5 {
		t.Errorf("CharLen = %d, want 5", got)
	}
	if got := tbl.Hash(h); got != ComputeHash([]byte("héllo")) {
		t.Errorf("Hash = %08x, want %08x", got, ComputeHash([]byte("héllo")))
	}

	data := tbl.Data(h)
	if string(data) != "héllo" || cap(data) != len(data) {
		t.Errorf("Data = %q (cap %d)", data, cap(data))
	}
	cstr := tbl.CStr(h)
	if len(cstr) != 7 || cstr[6] != 0 {
		t.Errorf("CStr missing terminator: %v", cstr)
	}

	if b, ok := tbl.Lookup(h); !ok || string(b) != "héllo" {
		t.Errorf("Lookup = %q, %v", b, ok)
	}
}

func TestInvalidHandle(t *testing.T) {
	tbl := MustNew([]string{"x"})

	for _, h := range []Handle{Null, 2, 1000} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("handle %d: expected an error panic, got %v", h, r)
				}
				var ih *InvalidHandleError
				if !errors.As(err, &ih) || ih.Handle != h || !errors.Is(err, ErrInvalidHandle) {
					t.Errorf("handle %d: unexpected panic %v", h, err)
				}
			}()
			tbl.Str(h)
		}()

		if _, ok := tbl.Lookup(h); ok {
			t.Errorf("Lookup(%d) should report a miss", h)
		}
		if tbl.Contains(h) {
			t.Errorf("Contains(%d) should be false", h)
		}
	}
}

func TestOutOfMemory(t *testing.T) {
	tbl := MustNew([]string{"abc"}, WithMaxBytes(10))

	_, err := tbl.InternString("defg")
	require.NoError(t, err)

	_, err = tbl.InternString("hijk")
	require.ErrorIs(t, err, ErrOutOfMemory)

	// Existing strings are still found without allocating.
	h, err := tbl.InternString("defg")
	require.NoError(t, err)
	require.Equal(t, Handle(2), h)
	require.Equal(t, Null, tbl.FindString("hijk"))
	require.Equal(t, uint32(2), tbl.Count())
}

func TestStaticSetTooLargeForBudget(t *testing.T) {
	_, err := New([]string{"long static"}, WithMaxBytes(4))
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestDuplicateStatic(t *testing.T) {
	_, err := New([]string{"a", "b", "a"})
	require.ErrorIs(t, err, ErrDuplicateStatic)
}

func TestLookupModesAgree(t *testing.T) {
	configs := map[string][]Option{
		"scan":        nil,
		"index":       {WithIndex(7)},
		"index_xx":    {WithIndex(16), WithHasher(XXHash)},
		"cache":       {WithFindCache(8)},
		"index_cache": {WithIndex(3), WithFindCache(2)},
		"locked":      {WithLocking(), WithIndex(5)},
	}
	statics := []string{"__init__", "__name__", "self"}

	var reference []Handle
	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			tbl := MustNew(statics, append(opts, WithPoolSize(3))...)
			var got []Handle
			for i := range 200 {
				got = append(got, tbl.MustIntern(fmt.Sprintf("id%d", i%60)))
			}
			got = append(got, tbl.FindString("self"), tbl.FindString("id59"), tbl.FindString("missing"))

			if reference == nil {
				reference = got
				return
			}
			require.Equal(t, reference, got)
		})
	}
}

func TestIndexStats(t *testing.T) {
	tbl := MustNew(nil, WithIndex(4))
	for i := range 10 {
		tbl.MustIntern(fmt.Sprintf("k%d", i))
	}
	stats, ok := tbl.IndexStats()
	require.True(t, ok)
	require.Equal(t, 4, stats.Buckets)
	require.GreaterOrEqual(t, stats.Longest, 3)

	_, ok = MustNew(nil).IndexStats()
	require.False(t, ok)
}

func TestHashers(t *testing.T) {
	if DJB2(nil) != 5381 {
		t.Errorf("DJB2 of empty input should be the seed, got %d", DJB2(nil))
	}
	if DJB2([]byte("foo")) != 0x0b8737a3 {
		t.Errorf("DJB2(foo) = %08x", DJB2([]byte("foo")))
	}
	if XXHash([]byte("foo")) == XXHash([]byte("bar")) {
		t.Error("XXHash should separate foo and bar")
	}

	tbl := MustNew([]string{"foo"}, WithHasher(XXHash))
	require.Equal(t, XXHash([]byte("foo")), tbl.Hash(1))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]string{"ab", "c"})
	b := Fingerprint([]string{"a", "bc"})
	c := Fingerprint([]string{"c", "ab"})
	if a == b || a == c {
		t.Error("Fingerprint must depend on boundaries and order")
	}
	require.Equal(t, a, Fingerprint([]string{"ab", "c"}))
	require.NotEqual(t, Fingerprint([]string{"a\x00b"}), Fingerprint([]string{"a", "b"}))
	require.NotEqual(t, Fingerprint([]string{""}), Fingerprint(nil))
}
