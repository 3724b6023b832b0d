package hwintrin

import (
	"sync"
	"testing"
)

// The table and name maps are frozen after init, so any number of unit
// compilations may query them at once.  Run a crowd of goroutines over every
// lookup surface and check each sees exactly what a sequential reader sees;
// the race detector does the rest.
func TestConcurrentLookups(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
				desc := Lookup(id)
				if desc.ID != id {
					t.Errorf("Lookup(%d) returned descriptor for %d", id, desc.ID)
					return
				}

				if LookupID(desc.ISA.ClassName(), desc.Name) != id {
					t.Errorf("name resolution diverged for %s", id)
					return
				}

				if LookupISAOf(id) != desc.ISA || LookupCategory(id) != desc.Category {
					t.Errorf("accessor lookups diverged for %s", id)
					return
				}

				_ = LookupImmUpperBound(id)
				_ = LookupNumArgs(id)
			}
		}()
	}

	wg.Wait()
}
