package rng

import "fmt"

// Shuffle permutes n elements in place using the Fisher-Yates algorithm:
// for each index i from n-1 down to 1, a uniform j in [0, i] is drawn from
// src and elements i and j are swapped. Every one of the n! orderings is
// equally likely to the extent the source is uniform.
func Shuffle(src Source, n int, swap func(i, j int)) error {
	for i := n - 1; i >= 1; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("rng: drawing swap index: %w", err)
		}
		swap(i, j)
	}
	return nil
}
