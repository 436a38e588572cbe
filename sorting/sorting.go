// Package sorting provides the comparison sorts used by the benchmark
// harness: heapsort, bottom-up mergesort and randomized 3-way quicksort.
// Every sort returns a new slice and leaves its input unchanged.
package sorting

import (
	"cmp"
	"math/rand"
)

// HeapSort sorts by building a max-heap in place and repeatedly moving the
// maximum to the end of the shrinking unsorted prefix.
func HeapSort[T cmp.Ordered](values []T) []T {
	out := append([]T(nil), values...)
	n := len(out)
	if n <= 1 {
		return out
	}
	// Last parent sits at (n/2)-1; heapify bottom-up from there.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n-1)
	}
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end-1)
	}
	return out
}

// siftDown restores the max-heap property in a[start:end+1], assuming both
// subtrees below start are already heaps.
func siftDown[T cmp.Ordered](a []T, start, end int) {
	root := start
	for {
		left := 2*root + 1
		if left > end {
			return
		}
		child := left
		if right := left + 1; right <= end && a[right] > a[left] {
			child = right
		}
		if a[child] <= a[root] {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}

// MergeSort sorts with an iterative bottom-up merge, doubling the run width
// each pass. Iteration avoids recursion depth concerns on large inputs.
func MergeSort[T cmp.Ordered](values []T) []T {
	n := len(values)
	if n <= 1 {
		return append([]T(nil), values...)
	}
	src := append([]T(nil), values...)
	dst := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for left := 0; left < n; left += 2 * width {
			mid := min(left+width, n)
			right := min(left+2*width, n)
			merge(src, dst, left, mid, right)
		}
		src, dst = dst, src
	}
	return src
}

func merge[T cmp.Ordered](src, dst []T, left, mid, right int) {
	i, j, k := left, mid, left
	for i < mid && j < right {
		if src[i] <= src[j] {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		dst[k] = src[i]
	}
	for ; j < right; j, k = j+1, k+1 {
		dst[k] = src[j]
	}
}

// QuickSort sorts with a randomized 3-way partition, which keeps performance
// on inputs with many duplicate keys. Recursion goes into the smaller
// partition; the larger one is handled by the loop, bounding stack depth.
func QuickSort[T cmp.Ordered](values []T) []T {
	out := append([]T(nil), values...)
	quicksort3Way(out, 0, len(out)-1)
	return out
}

func quicksort3Way[T cmp.Ordered](a []T, lo, hi int) {
	for lo < hi {
		pivot := a[lo+rand.Intn(hi-lo+1)]

		// Partition into < pivot | == pivot | > pivot.
		lt, i, gt := lo, lo, hi
		for i <= gt {
			switch {
			case a[i] < pivot:
				a[lt], a[i] = a[i], a[lt]
				lt++
				i++
			case a[i] > pivot:
				a[i], a[gt] = a[gt], a[i]
				gt--
			default:
				i++
			}
		}

		if lt-lo < hi-gt {
			quicksort3Way(a, lo, lt-1)
			lo = gt + 1
		} else {
			quicksort3Way(a, gt+1, hi)
			hi = lt - 1
		}
	}
}
