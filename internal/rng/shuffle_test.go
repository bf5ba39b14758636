package rng_test

import (
	"testing"

	"github.com/eventpix/luckydraw-backend/internal/rng"
	"github.com/eventpix/luckydraw-backend/internal/rng/rngtest"
)

func TestCryptoSourceIntn(t *testing.T) {
	src := rng.NewCryptoSource()

	t.Run("values stay in range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v, err := src.Intn(7)
			if err != nil {
				t.Fatalf("Intn returned error: %v", err)
			}
			if v < 0 || v >= 7 {
				t.Fatalf("Intn(7) returned out-of-range value %d", v)
			}
		}
	})

	t.Run("rejects non-positive n", func(t *testing.T) {
		if _, err := src.Intn(0); err == nil {
			t.Error("expected error for n = 0")
		}
		if _, err := src.Intn(-3); err == nil {
			t.Error("expected error for n = -3")
		}
	})
}

func TestShufflePermutes(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	shuffled := make([]int, len(items))
	copy(shuffled, items)

	err := rng.Shuffle(rng.NewCryptoSource(), len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if err != nil {
		t.Fatalf("Shuffle returned error: %v", err)
	}

	// Every original element must survive exactly once
	seen := make(map[int]int)
	for _, v := range shuffled {
		seen[v]++
	}
	for _, v := range items {
		if seen[v] != 1 {
			t.Errorf("element %d appears %d times after shuffle", v, seen[v])
		}
	}
}

func TestShuffleDeterministicWithSeededSource(t *testing.T) {
	run := func(seed string) []int {
		out := []int{0, 1, 2, 3, 4, 5}
		src := rngtest.NewSeeded(seed)
		if err := rng.Shuffle(src, len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		}); err != nil {
			t.Fatalf("Shuffle returned error: %v", err)
		}
		return out
	}

	first := run("fixture-seed")
	second := run("fixture-seed")
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different permutations: %v vs %v", first, second)
		}
	}

	other := run("different-seed")
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical permutations")
	}
}

// TestShuffleUniformity checks that over many trials each element lands in
// each position with roughly equal frequency. The tolerance is loose enough
// to keep the test stable while still catching a biased swap-index range.
func TestShuffleUniformity(t *testing.T) {
	const (
		n      = 4
		trials = 20000
	)
	src := rng.NewCryptoSource()

	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}

	for trial := 0; trial < trials; trial++ {
		perm := []int{0, 1, 2, 3}
		if err := rng.Shuffle(src, n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		}); err != nil {
			t.Fatalf("Shuffle returned error: %v", err)
		}
		for pos, v := range perm {
			counts[v][pos]++
		}
	}

	expected := float64(trials) / float64(n)
	// chi-square statistic across the element x position table
	chi := 0.0
	for _, row := range counts {
		for _, observed := range row {
			diff := float64(observed) - expected
			chi += diff * diff / expected
		}
	}
	// 9 degrees of freedom per independent dimension; with 16 cells the
	// statistic stays well below this bound for a uniform shuffle
	const limit = 80.0
	if chi > limit {
		t.Errorf("chi-square statistic %.2f exceeds %.2f; position counts %v", chi, limit, counts)
	}
}
