package clipslice

import "iter"

// View is a non-owning, read-only handle over a contiguous run of elements.
// It borrows the storage it was created over and never copies it. A View
// permits any number of concurrent readers; whoever still holds the backing
// slice is responsible for not writing to it while reads through the view
// are expected to be stable.
//
// The zero value is an empty view.
type View[E any] struct {
	s []E
}

// NewView returns a read-only view over s. The view aliases s's backing
// array.
func NewView[E any](s []E) View[E] {
	return View[E]{s: s}
}

// Len returns the number of elements in the view.
func (v View[E]) Len() int { return len(v.s) }

// At returns the element at index i. A negative i counts from the back, so
// At(-1) is the last element. At panics if i is out of range in either
// direction.
func (v View[E]) At(i int) E {
	if i < 0 {
		return v.s[len(v.s)+i]
	}
	return v.s[i]
}

// By returns the sub-view of v selected by r, with each endpoint clipped via
// [Clip]. The sub-view aliases the same storage as v. By panics if a bounded
// range clips to start > end.
func (v View[E]) By(r Range) View[E] {
	start, end := Bounds(r, len(v.s))
	return View[E]{s: v.s[start:end]}
}

// Values returns an iterator over the view's elements from front to back.
func (v View[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range v.s {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the view's elements from back to front.
func (v View[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(v.s) - 1; i >= 0; i-- {
			if !yield(v.s[i]) {
				return
			}
		}
	}
}

// AppendTo appends the view's elements to dst and returns the extended
// slice, for callers that need an owned copy.
func (v View[E]) AppendTo(dst []E) []E {
	return append(dst, v.s...)
}
