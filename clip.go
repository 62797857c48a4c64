package clipslice

import (
	"fmt"
	"strconv"
)

// Clip normalizes the position pos into a valid bound on a sequence of the
// given length. A non-negative pos is clamped to length; a negative pos
// counts from the back, where -k means length − k, clamped to zero when k
// exceeds the length. The result is always in [0, length]. Clip is total and
// never panics.
func Clip(pos, length int) int {
	if pos < 0 {
		if pos <= -length {
			return 0
		}
		return length + pos
	}
	return min(pos, length)
}

type RangeKind int

const (
	BoundedKind RangeKind = iota + 1
	FromKind
	ToKind
	FullKind
)

// Range describes one of the four supported range shapes over a sequence.
// Start is meaningful for BoundedKind and FromKind, End for BoundedKind and
// ToKind. Either endpoint may be negative, counting from the back of the
// sequence.
type Range struct {
	Kind  RangeKind
	Start int
	End   int
}

// Bounded returns the range [start:end).
func Bounded(start, end int) Range {
	return Range{Kind: BoundedKind, Start: start, End: end}
}

// From returns the open-ended range [start:].
func From(start int) Range {
	return Range{Kind: FromKind, Start: start}
}

// To returns the open-ended range [:end].
func To(end int) Range {
	return Range{Kind: ToKind, End: end}
}

// Full returns the full range [:], which selects a sequence unchanged.
func Full() Range {
	return Range{Kind: FullKind}
}

// String renders the range in Python slice notation, e.g. "[1:-2]".
func (r Range) String() string {
	switch r.Kind {
	case BoundedKind:
		return "[" + strconv.Itoa(r.Start) + ":" + strconv.Itoa(r.End) + "]"
	case FromKind:
		return "[" + strconv.Itoa(r.Start) + ":]"
	case ToKind:
		return "[:" + strconv.Itoa(r.End) + "]"
	case FullKind:
		return "[:]"
	default:
		return fmt.Sprintf("Range{Kind: %d}", int(r.Kind))
	}
}

// Bounds resolves r against a sequence of the given length, returning the
// concrete half-open interval [start, end) it selects. Each endpoint is
// clipped independently via [Clip]. A bounded range whose clipped start
// exceeds its clipped end is invalid; the bounds are not reordered, Bounds
// panics instead.
func Bounds(r Range, length int) (start, end int) {
	switch r.Kind {
	case BoundedKind:
		start, end = Clip(r.Start, length), Clip(r.End, length)
		if start > end {
			panic(fmt.Sprintf("clipslice: range %v clips to invalid bounds [%d:%d] for length %d", r, start, end, length))
		}
		return start, end
	case FromKind:
		return Clip(r.Start, length), length
	case ToKind:
		return 0, Clip(r.End, length)
	case FullKind:
		return 0, length
	default:
		panic(fmt.Sprintf("clipslice: invalid Range kind %d", int(r.Kind)))
	}
}
