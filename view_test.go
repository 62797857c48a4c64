package clipslice

import (
	"slices"
	"testing"
)

func TestViewBy(t *testing.T) {
	v := NewView([]int{0, 1, 2, 3, 4, 5})
	f := func(r Range, want []int) {
		t.Helper()
		diff(t, want, v.By(r).AppendTo(nil))
	}
	f(Bounded(0, 2), []int{0, 1})
	f(Bounded(1, -2), []int{1, 2, 3})
	f(Bounded(-4, -1), []int{2, 3, 4})
	f(From(-2), []int{4, 5})
	f(To(-2), []int{0, 1, 2, 3})
	f(Full(), []int{0, 1, 2, 3, 4, 5})

	mustPanic(t, "Bounded(4, 2)", func() { v.By(Bounded(4, 2)) })
}

func TestViewFullIdentity(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5}
	v := NewView(a)
	sub := v.By(Full())
	if sub.Len() != v.Len() {
		t.Errorf("got length %d, want %d", sub.Len(), v.Len())
	}
	diff(t, a, sub.AppendTo(nil))
}

func TestViewBorrows(t *testing.T) {
	a := []int{0, 1, 2, 3}
	v := NewView(a)
	// the view aliases a, it does not copy
	a[1] = 10
	if got := v.At(1); got != 10 {
		t.Errorf("v.At(1) = %d, want 10", got)
	}
}

func TestViewAt(t *testing.T) {
	v := NewView([]int{0, 1, 2, 3, 4, 5})
	f := func(i, want int) {
		t.Helper()
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	f(0, 0)
	f(5, 5)
	f(-1, 5)
	f(-2, 4)
	f(-6, 0)

	mustPanic(t, "At(6)", func() { v.At(6) })
	mustPanic(t, "At(-7)", func() { v.At(-7) })
}

func TestViewIterators(t *testing.T) {
	v := NewView([]int{0, 1, 2, 3, 4, 5})
	diff(t, []int{0, 1, 2, 3, 4, 5}, slices.Collect(v.Values()))
	diff(t, []int{5, 4, 3, 2, 1, 0}, slices.Collect(v.Backward()))
	diff(t, []int{3, 2, 1, 0}, slices.Collect(v.By(To(-2)).Backward()))

	// early break must not iterate further
	n := 0
	for range v.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d elements after break, want 2", n)
	}
}

func TestViewZeroValue(t *testing.T) {
	var v View[string]
	if v.Len() != 0 {
		t.Errorf("zero view has length %d, want 0", v.Len())
	}
	if got := v.By(Full()).Len(); got != 0 {
		t.Errorf("full sub-view of zero view has length %d, want 0", got)
	}
}
