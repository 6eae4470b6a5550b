// Randomized invariant checks against reference models, in the spirit
// of the ring-buffer property tests elsewhere in this codebase.

package vec_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/stackvec/vec"
)

// TestArrayPropertyBased drives random mutations against a plain slice
// model and checks contents and length after every step.
func TestArrayPropertyBased(t *testing.T) {
	const capacity = 32
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := vec.New[int](capacity)
		model := make([]int, 0, capacity)

		for step := 0; step < 5000; step++ {
			switch op := rng.Intn(6); op {
			case 0: // push
				v := rng.Intn(1 << 16)
				err := a.Push(v)
				if len(model) < capacity {
					if err != nil {
						t.Fatalf("seed %d step %d: push failed below capacity: %v", seed, step, err)
					}
					model = append(model, v)
				} else if err == nil {
					t.Fatalf("seed %d step %d: push succeeded at capacity", seed, step)
				}
			case 1: // pop
				v, ok := a.Pop()
				if ok != (len(model) > 0) {
					t.Fatalf("seed %d step %d: pop ok=%v, model len %d", seed, step, ok, len(model))
				}
				if ok {
					want := model[len(model)-1]
					model = model[:len(model)-1]
					if v != want {
						t.Fatalf("seed %d step %d: pop = %d, want %d", seed, step, v, want)
					}
				}
			case 2: // insert at random valid index
				if len(model) == capacity {
					continue
				}
				i := rng.Intn(len(model) + 1)
				v := rng.Intn(1 << 16)
				if err := a.Insert(i, v); err != nil {
					t.Fatalf("seed %d step %d: insert: %v", seed, step, err)
				}
				model = append(model[:i], append([]int{v}, model[i:]...)...)
			case 3: // remove at random index
				if len(model) == 0 {
					continue
				}
				i := rng.Intn(len(model))
				v, err := a.Remove(i)
				if err != nil {
					t.Fatalf("seed %d step %d: remove: %v", seed, step, err)
				}
				if v != model[i] {
					t.Fatalf("seed %d step %d: remove = %d, want %d", seed, step, v, model[i])
				}
				model = append(model[:i], model[i+1:]...)
			case 4: // truncate
				n := rng.Intn(len(model) + 1)
				a.Truncate(n)
				model = model[:n]
			case 5: // retain a random residue class
				r := rng.Intn(3)
				a.Retain(func(x int) bool { return x%3 == r })
				kept := model[:0]
				for _, x := range model {
					if x%3 == r {
						kept = append(kept, x)
					}
				}
				model = kept
			}

			if a.Len() != len(model) {
				t.Fatalf("seed %d step %d: len = %d, model %d", seed, step, a.Len(), len(model))
			}
			for i, want := range model {
				if got := a.At(i); got != want {
					t.Fatalf("seed %d step %d: slot %d = %d, want %d", seed, step, i, got, want)
				}
			}
		}
	}
}

// TestArrayAsFIFOAgainstQueue uses the array as a bounded FIFO
// (push back, remove front) and checks yielded order against the
// eapache queue as oracle.
func TestArrayAsFIFOAgainstQueue(t *testing.T) {
	const capacity = 16
	rng := rand.New(rand.NewSource(42))
	a := vec.New[int](capacity)
	oracle := queue.New()

	for step := 0; step < 20000; step++ {
		if rng.Intn(2) == 0 {
			v := rng.Intn(1 << 20)
			if err := a.Push(v); err == nil {
				oracle.Add(v)
			} else if oracle.Length() != capacity {
				t.Fatalf("step %d: push refused with oracle length %d", step, oracle.Length())
			}
		} else {
			if a.IsEmpty() {
				if oracle.Length() != 0 {
					t.Fatalf("step %d: array empty, oracle holds %d", step, oracle.Length())
				}
				continue
			}
			got, err := a.Remove(0)
			if err != nil {
				t.Fatalf("step %d: remove: %v", step, err)
			}
			want := oracle.Remove().(int)
			if got != want {
				t.Fatalf("step %d: FIFO yielded %d, oracle %d", step, got, want)
			}
		}
		if a.Len() != oracle.Length() {
			t.Fatalf("step %d: len %d, oracle %d", step, a.Len(), oracle.Length())
		}
	}
}
