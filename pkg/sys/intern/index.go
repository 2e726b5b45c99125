package intern

// bucketIndex maps hash % len(buckets) to the handles stored under it.
// It only narrows the candidates; equality is still decided by the record.
type bucketIndex struct {
	buckets [][]Handle
}

func newBucketIndex(n int) *bucketIndex {
	return &bucketIndex{buckets: make([][]Handle, n)}
}

func (ix *bucketIndex) slot(hash uint32) int {
	return int(hash % uint32(len(ix.buckets)))
}

func (ix *bucketIndex) add(hash uint32, h Handle) {
	i := ix.slot(hash)
	ix.buckets[i] = append(ix.buckets[i], h)
}

func (ix *bucketIndex) find(t *Table, hash uint32, b []byte) Handle {
	for _, h := range ix.buckets[ix.slot(hash)] {
		if t.record(h).matches(hash, b) {
			return h
		}
	}
	return Null
}

// load returns the longest bucket and the number of empty buckets.
func (ix *bucketIndex) load() (longest, empty int) {
	for _, b := range ix.buckets {
		if len(b) == 0 {
			empty++
		}
		if len(b) > longest {
			longest = len(b)
		}
	}
	return longest, empty
}
