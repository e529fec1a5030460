package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Returns the keys of a map as a sorted sequence
func Keys[K constraints.Ordered, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))

	for key := range input {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
