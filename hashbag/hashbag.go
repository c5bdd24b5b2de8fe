// Package hashbag is a small generic multiset keyed by any comparable type.
package hashbag

import (
	"cmp"
	"slices"
)

type HashBag[K comparable] map[K]uint32

func New[K comparable]() HashBag[K] {
	return make(map[K]uint32)
}

// Builds a bag holding one occurrence per element of items.
func FromSlice[K comparable](items []K) HashBag[K] {
	bag := make(map[K]uint32, len(items))

	for _, item := range items {
		Insert(bag, item)
	}

	return bag
}

func Insert[K comparable](bag HashBag[K], key K) {
	bag[key]++
}

func InsertN[K comparable](bag HashBag[K], key K, n uint32) {
	if n == 0 {
		return
	}

	bag[key] += n
}

func Count[K comparable](bag HashBag[K], key K) uint32 {
	return bag[key]
}

// Total number of occurrences across all keys.
func Size[K comparable](bag HashBag[K]) int {
	size := 0

	for _, count := range bag {
		size += int(count)
	}

	return size
}

// Expand lists every occurrence, grouped by key in ascending key order.
func Expand[K cmp.Ordered](bag HashBag[K]) []K {
	keys := make([]K, 0, len(bag))

	for key := range bag {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	items := make([]K, 0, Size(bag))

	for _, key := range keys {
		for i := uint32(0); i < bag[key]; i++ {
			items = append(items, key)
		}
	}

	return items
}

// Covers reports whether bag holds at least requirement[k] occurrences of
// every key k. Keys absent from bag count as zero; keys of bag that the
// requirement does not mention are ignored. Non-positive requirements are
// always met.
func Covers[K comparable](bag HashBag[K], requirement map[K]int) bool {
	for key, needed := range requirement {
		if needed <= 0 {
			continue
		}

		if int(Count(bag, key)) < needed {
			return false
		}
	}

	return true
}
