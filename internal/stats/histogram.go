package stats

import (
	"cmp"
	"slices"
)

// Histogram counts occurrences per bucket. The zero value is not usable;
// create histograms with NewHistogram.
type Histogram[K cmp.Ordered] struct {
	counts map[K]int
}

// NewHistogram returns an empty histogram.
func NewHistogram[K cmp.Ordered]() *Histogram[K] {
	return &Histogram[K]{counts: make(map[K]int)}
}

// Add increments bucket k by one, creating it if absent.
func (h *Histogram[K]) Add(k K) {
	h.counts[k]++
}

// AddN increments bucket k by n. The bucket is created even when n is 0.
func (h *Histogram[K]) AddN(k K, n int) {
	h.counts[k] += n
}

// Merge adds other into h key by key. Keys missing on either side count as 0.
func (h *Histogram[K]) Merge(other *Histogram[K]) {
	if other == nil {
		return
	}
	for k, n := range other.counts {
		h.counts[k] += n
	}
}

// Get returns the count of bucket k.
func (h *Histogram[K]) Get(k K) int {
	return h.counts[k]
}

// Total returns the sum of all buckets.
func (h *Histogram[K]) Total() int {
	total := 0
	for _, n := range h.counts {
		total += n
	}
	return total
}

// Len returns the number of buckets.
func (h *Histogram[K]) Len() int {
	return len(h.counts)
}

// Keys returns the bucket keys in ascending order.
func (h *Histogram[K]) Keys() []K {
	keys := make([]K, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the buckets.
func (h *Histogram[K]) Map() map[K]int {
	out := make(map[K]int, len(h.counts))
	for k, n := range h.counts {
		out[k] = n
	}
	return out
}

// Clone returns an independent copy of h.
func (h *Histogram[K]) Clone() *Histogram[K] {
	return &Histogram[K]{counts: h.Map()}
}

// MergeAll returns a new histogram holding the key-wise sum of hs.
func MergeAll[K cmp.Ordered](hs ...*Histogram[K]) *Histogram[K] {
	out := NewHistogram[K]()
	for _, h := range hs {
		out.Merge(h)
	}
	return out
}
