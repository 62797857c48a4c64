package clipslice

// Vector is a growable, slice-backed sequence with push/pop access and
// range clipping against its current length. The zero value is an empty
// vector ready for use.
type Vector[E any] struct {
	elems []E
}

// NewVector returns a vector holding elems.
func NewVector[E any](elems ...E) *Vector[E] {
	return &Vector[E]{elems: elems}
}

// Push appends e to the end of the vector.
func (v *Vector[E]) Push(e E) {
	v.elems = append(v.elems, e)
}

// Pop removes and returns the last element. It panics on an empty vector.
func (v *Vector[E]) Pop() E {
	e := v.elems[len(v.elems)-1]
	v.elems = v.elems[:len(v.elems)-1]
	return e
}

// Len returns the number of elements currently in the vector.
func (v *Vector[E]) Len() int { return len(v.elems) }

// Cap returns the capacity of the vector's backing array.
func (v *Vector[E]) Cap() int { return cap(v.elems) }

// At returns the element at index i. A negative i counts from the back, so
// At(-1) is the last element. At panics if i is out of range in either
// direction.
func (v *Vector[E]) At(i int) E {
	if i < 0 {
		return v.elems[len(v.elems)+i]
	}
	return v.elems[i]
}

// Elems returns the vector's current contents as a slice aliasing its
// storage. The slice is invalidated by a Push that grows the backing array.
func (v *Vector[E]) Elems() []E { return v.elems }

// By returns the sub-slice of the vector's current contents selected by r.
// The vector's length is read at call time, so a range taken after a Push or
// Pop clips against the new length. The result aliases the vector's storage;
// writes through it are visible in the vector.
func (v *Vector[E]) By(r Range) []E {
	return By(v.elems, r)
}

// ViewBy is like [Vector.By] but returns a read-only view.
func (v *Vector[E]) ViewBy(r Range) View[E] {
	return NewView(v.elems).By(r)
}
