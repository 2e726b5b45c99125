package intern

import (
	"fmt"
	"sync"
	"testing"
)

func TestLockedConcurrentIntern(t *testing.T) {
	tbl := MustNew([]string{"shared"}, WithLocking(), WithPoolSize(4), WithFindCache(16))

	const workers = 8
	const words = 300

	results := make([][]Handle, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]Handle, words)
			for i := range words {
				// Every worker interns the same words in a different order.
				k := (i*7 + w*13) % words
				h, err := tbl.InternString(fmt.Sprintf("w%d", k))
				if err != nil {
					t.Errorf("intern failed: %v", err)
					return
				}
				out[k] = h
				// Lock-free reads of already assigned handles.
				if got := tbl.Str(h); got != fmt.Sprintf("w%d", k) {
					t.Errorf("handle %d resolved to %q", h, got)
				}
			}
			results[w] = out
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for k := range words {
			if results[w][k] != results[0][k] {
				t.Fatalf("word w%d got handles %d and %d", k, results[0][k], results[w][k])
			}
		}
	}
	if got := tbl.Count(); got != words+1 {
		t.Errorf("Expected %d strings, got %d", words+1, got)
	}
}
