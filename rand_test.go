package generative

import (
	"math"
	"sync"
	"testing"
)

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v for equal seeds", i, x, y)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a, b := NewRand(1), NewRand(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandRandom(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 5000; i++ {
		n := r.Random(-5, 5)
		if n != math.Floor(n) || n < -5 || n >= 5 {
			t.Fatalf("Random(-5, 5) = %v, want integer in [-5, 5)", n)
		}
		f := r.RandomFloat(2, 3)
		if f < 2 || f >= 3 {
			t.Fatalf("RandomFloat(2, 3) = %v, want in [2, 3)", f)
		}
	}
}

func TestRandConcurrent(t *testing.T) {
	r := NewRand(9)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = r.RandomFloat(0, 1)
			}
		}()
	}
	wg.Wait()
}
