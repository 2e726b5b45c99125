package intern

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes the lookup hash of a byte string. It must be deterministic
// for the life of a Table.
type Hasher func(b []byte) uint32

// DJB2 is the default hasher: the djb2 xor variant, h = h*33 ^ c.
// Its values are stable across builds and platforms.
func DJB2(b []byte) uint32 {
	h := uint32(5381)
	for _, c := range b {
		h = h*33 ^ uint32(c)
	}
	return h
}

// XXHash folds xxhash64 down to 32 bits. It spreads better than DJB2 on
// long strings and is a good fit together with WithIndex.
func XXHash(b []byte) uint32 {
	s := xxhash.Sum64(b)
	return uint32(s) ^ uint32(s>>32)
}

// ComputeHash hashes b with the default hasher.
func ComputeHash(b []byte) uint32 {
	return DJB2(b)
}

// Fingerprint identifies an ordered static set. Two builds agree on static
// handles exactly when their fingerprints match.
func Fingerprint(statics []string) uint64 {
	d := xxhash.New()
	var n [binary.MaxVarintLen64]byte
	for _, s := range statics {
		// Length prefix, so entries may contain any byte.
		_, _ = d.Write(n[:binary.PutUvarint(n[:], uint64(len(s)))])
		_, _ = d.WriteString(s)
	}
	return d.Sum64()
}
